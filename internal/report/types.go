package report

// #region domain

// Domain identifies which status-report catalog and rule set applies.
// Wire names match the Portuguese domain ids used by the file format.
type Domain string

const (
	DomainSchedule Domain = "cronograma"
	DomainCost     Domain = "custos"
	DomainScope    Domain = "escopo"
	DomainRisk     Domain = "riscos"
)

// Valid reports whether d is one of the four known domains.
func (d Domain) Valid() bool {
	switch d {
	case DomainSchedule, DomainCost, DomainScope, DomainRisk:
		return true
	}
	return false
}

// AllDomains lists the known domains in catalog order.
func AllDomains() []Domain {
	return []Domain{DomainSchedule, DomainCost, DomainScope, DomainRisk}
}

// #endregion domain

// #region value

// Kind tags the concrete type held by a Value.
type Kind int

const (
	KindFloat Kind = iota
	KindInt
	KindString
	KindBool
	KindList
	KindCategories
)

// Category is one entry of a cost-breakdown section: name, amount, and an
// optional share of the total (Percent < 0 means not given).
type Category struct {
	Name    string
	Amount  float64
	Percent float64
}

// Value is a tagged union for extracted metric values. The zero Value is a
// float zero; construct through the typed helpers.
type Value struct {
	kind Kind
	f    float64
	i    int
	s    string
	b    bool
	list []string
	cats []Category
}

func Float(v float64) Value      { return Value{kind: KindFloat, f: v} }
func Int(v int) Value            { return Value{kind: KindInt, i: v} }
func String(v string) Value      { return Value{kind: KindString, s: v} }
func Bool(v bool) Value          { return Value{kind: KindBool, b: v} }
func List(v []string) Value      { return Value{kind: KindList, list: v} }
func Categories(v []Category) Value { return Value{kind: KindCategories, cats: v} }

// Kind returns the tag of the value.
func (v Value) Kind() Kind { return v.kind }

// Float returns the float payload. Int values convert; other kinds report false.
func (v Value) Float() (float64, bool) {
	switch v.kind {
	case KindFloat:
		return v.f, true
	case KindInt:
		return float64(v.i), true
	}
	return 0, false
}

// Int returns the int payload; false for any other kind.
func (v Value) Int() (int, bool) {
	if v.kind != KindInt {
		return 0, false
	}
	return v.i, true
}

// String returns the string payload; false for any other kind.
func (v Value) String() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.s, true
}

// Bool returns the bool payload; false for any other kind.
func (v Value) Bool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// List returns the string-list payload; false for any other kind.
func (v Value) List() ([]string, bool) {
	if v.kind != KindList {
		return nil, false
	}
	return v.list, true
}

// Categories returns the cost-breakdown payload; false for any other kind.
func (v Value) Categories() ([]Category, bool) {
	if v.kind != KindCategories {
		return nil, false
	}
	return v.cats, true
}

// #endregion value

// #region fields

// Fields maps canonical metric keys to typed values. A missing key means the
// field was absent or unparseable in the source report — never a placeholder.
type Fields map[string]Value

// Float looks up key as a numeric field.
func (f Fields) Float(key string) (float64, bool) {
	v, ok := f[key]
	if !ok {
		return 0, false
	}
	return v.Float()
}

// Int looks up key as an int field.
func (f Fields) Int(key string) (int, bool) {
	v, ok := f[key]
	if !ok {
		return 0, false
	}
	return v.Int()
}

// String looks up key as a string field.
func (f Fields) String(key string) (string, bool) {
	v, ok := f[key]
	if !ok {
		return "", false
	}
	return v.String()
}

// Bool looks up key as a bool field. Absent reads as false.
func (f Fields) Bool(key string) bool {
	v, ok := f[key]
	if !ok {
		return false
	}
	b, ok := v.Bool()
	return ok && b
}

// List looks up key as a string-list field.
func (f Fields) List(key string) ([]string, bool) {
	v, ok := f[key]
	if !ok {
		return nil, false
	}
	return v.List()
}

// Categories looks up key as a cost-breakdown field.
func (f Fields) Categories(key string) ([]Category, bool) {
	v, ok := f[key]
	if !ok {
		return nil, false
	}
	return v.Categories()
}

// Has reports whether key is present at all.
func (f Fields) Has(key string) bool {
	_, ok := f[key]
	return ok
}

// Clone returns a shallow copy of the field map.
func (f Fields) Clone() Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// #endregion fields

// #region record

// Record is the parsed representation of one status report. It is created by
// the extractor, enriched in place by the metric deriver, and read-only after
// that.
type Record struct {
	ProjectID   string
	ProjectName string
	ReportDate  string
	Manager     string
	Domain      Domain
	Fields      Fields
}

// NewRecord returns an empty record for the given domain.
func NewRecord(domain Domain) *Record {
	return &Record{Domain: domain, Fields: make(Fields)}
}

// #endregion record
