package schema

import (
	"errors"
	"testing"
)

// stubFrame is a minimal Frame for validator tests.
type stubFrame struct {
	names  []string
	dtypes map[string]string
}

func (f *stubFrame) ColumnNames() []string { return f.names }

func (f *stubFrame) ColumnType(name string) string { return f.dtypes[name] }

func products() *stubFrame {
	return &stubFrame{
		names:  []string{"Brand", "Price"},
		dtypes: map[string]string{"Brand": TypeObject, "Price": TypeInt},
	}
}

func TestValidate_Success(t *testing.T) {
	tests := []struct {
		name     string
		contract Contract
	}{
		{name: "empty contract", contract: Contract{}},
		{name: "subset of columns", contract: Contract{Fields: Cols("Brand")}},
		{name: "all columns", contract: Contract{Fields: Cols("Brand", "Price")}},
		{name: "typed", contract: Contract{Fields: []Field{
			{Name: "Brand", Type: TypeObject},
			{Name: "Price", Type: TypeInt},
		}}},
		{name: "strict exact match", contract: Contract{Fields: Cols("Brand", "Price"), Strict: true}},
		{name: "mixed typed and untyped", contract: Contract{Fields: []Field{
			{Name: "Brand"},
			{Name: "Price", Type: TypeInt},
		}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Validate(products(), tt.contract); err != nil {
				t.Errorf("Validate() error = %v, want nil", err)
			}
		})
	}
}

func TestValidate_MissingColumn(t *testing.T) {
	err := Validate(products(), Contract{Fields: Cols("Brand", "Year")})
	if err == nil {
		t.Fatal("Validate() should fail for a missing column")
	}

	var missing *MissingColumnError
	if !errors.As(err, &missing) {
		t.Fatalf("error should be *MissingColumnError, got %T", err)
	}
	if missing.Column != "Year" {
		t.Errorf("Column = %q, want Year", missing.Column)
	}

	want := "Column Year missing from DataFrame. Got columns: [Brand Price]"
	if err.Error() != want {
		t.Errorf("message = %q, want %q", err.Error(), want)
	}
}

func TestValidate_MissingBeforeDtype(t *testing.T) {
	// Missing-column checks run before dtype checks, even when the missing
	// column is declared later.
	contract := Contract{Fields: []Field{
		{Name: "Brand", Type: TypeInt}, // wrong dtype
		{Name: "Year"},                 // missing entirely
	}}

	err := Validate(products(), contract)
	var missing *MissingColumnError
	if !errors.As(err, &missing) {
		t.Fatalf("want *MissingColumnError first, got %T (%v)", err, err)
	}
}

func TestValidate_WrongDtype(t *testing.T) {
	err := Validate(products(), Contract{Fields: []Field{{Name: "Price", Type: TypeFloat}}})
	if err == nil {
		t.Fatal("Validate() should fail for a dtype mismatch")
	}

	var dtype *DtypeError
	if !errors.As(err, &dtype) {
		t.Fatalf("error should be *DtypeError, got %T", err)
	}

	want := "Column Price has wrong dtype. Was int64, expected float64"
	if err.Error() != want {
		t.Errorf("message = %q, want %q", err.Error(), want)
	}
}

func TestValidate_Strict(t *testing.T) {
	err := Validate(products(), Contract{Fields: Cols("Brand"), Strict: true})
	if err == nil {
		t.Fatal("strict contract should reject undeclared columns")
	}

	var extra *ExtraColumnsError
	if !errors.As(err, &extra) {
		t.Fatalf("error should be *ExtraColumnsError, got %T", err)
	}

	want := "DataFrame contained unexpected column(s): Price"
	if err.Error() != want {
		t.Errorf("message = %q, want %q", err.Error(), want)
	}
}

func TestValidate_StrictWithoutFields(t *testing.T) {
	// No declared fields means nothing to be strict about; every column of
	// the frame is acceptable.
	if err := Validate(products(), Contract{Strict: true}); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
}

func TestValidate_StrictAggregatesSorted(t *testing.T) {
	f := &stubFrame{
		names:  []string{"Zeta", "Brand", "Alpha"},
		dtypes: map[string]string{},
	}

	err := Validate(f, Contract{Fields: Cols("Brand"), Strict: true})
	var extra *ExtraColumnsError
	if !errors.As(err, &extra) {
		t.Fatalf("error should be *ExtraColumnsError, got %T", err)
	}

	want := "DataFrame contained unexpected column(s): Alpha, Zeta"
	if err.Error() != want {
		t.Errorf("message = %q, want %q", err.Error(), want)
	}
}

func TestValidate_NonStrictAllowsExtras(t *testing.T) {
	if err := Validate(products(), Contract{Fields: Cols("Brand")}); err != nil {
		t.Errorf("non-strict contract should allow extra columns, got %v", err)
	}
}

func TestValidate_ErrorsMatchSentinel(t *testing.T) {
	failures := []error{
		Validate(products(), Contract{Fields: Cols("Year")}),
		Validate(products(), Contract{Fields: []Field{{Name: "Price", Type: TypeFloat}}}),
		Validate(products(), Contract{Fields: Cols("Brand"), Strict: true}),
	}
	for _, err := range failures {
		if !errors.Is(err, ErrSchema) {
			t.Errorf("errors.Is(%v, ErrSchema) = false, want true", err)
		}
	}
}

func TestDescribe(t *testing.T) {
	got := Describe(products(), false)
	if got != "columns: [Brand Price]" {
		t.Errorf("Describe() = %q", got)
	}

	got = Describe(products(), true)
	if got != "columns: [Brand Price] with dtypes [object int64]" {
		t.Errorf("Describe(withDtypes) = %q", got)
	}
}
