package appdata

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sort"
	"strconv"
)

var (
	// ErrUnparseable is returned by Decode when the stored text is not a
	// JSON object.
	ErrUnparseable = errors.New("appdata: stored value is not a JSON object")
	// ErrUnknownField is returned by DecodeField for names that are not
	// AppData fields.
	ErrUnknownField = errors.New("appdata: unknown field")
)

// partialError reports the entries of a field that were dropped while the
// readable ones were kept.
type partialError struct {
	dropped []string
	first   error
}

func (e *partialError) Error() string {
	return fmt.Sprintf("dropped entries %v: %v", e.dropped, e.first)
}

func (e *partialError) Unwrap() error { return e.first }

func (e *partialError) add(entry string, err error) {
	if e.first == nil {
		e.first = err
	}
	e.dropped = append(e.dropped, entry)
}

func (e *partialError) orNil() error {
	if len(e.dropped) == 0 {
		return nil
	}
	return e
}

type field struct {
	name string
	// decode replaces the field in d from raw with whatever it can read. A
	// JSON null restores the field's default. On a shape mismatch the field
	// is left untouched; when only some entries are bad the rest are kept
	// and a *partialError is returned.
	decode func(d *AppData, raw json.RawMessage) error
}

var fields = []field{
	sliceField("todos", func(d *AppData) *[]Todo { return &d.Todos }),
	sliceField("goals", func(d *AppData) *[]Goal { return &d.Goals }),
	sliceField("exams", func(d *AppData) *[]Exam { return &d.Exams }),
	sliceField("habits", func(d *AppData) *[]Habit { return &d.Habits }),
	sliceField("writings", func(d *AppData) *[]Writing { return &d.Writings }),
	sliceField("books", func(d *AppData) *[]Book { return &d.Books }),
	sliceField("journalEntries", func(d *AppData) *[]JournalEntry { return &d.JournalEntries }),
	valueField("meData", func(d *AppData) *MeData { return &d.MeData }, func() MeData { return MeData{} }),
	sliceField("playlist", func(d *AppData) *[]PlaylistItem { return &d.Playlist }),
	valueField("spotifyUri", func(d *AppData) *string { return &d.SpotifyURI }, func() string { return "" }),
	overlayField("editableContent", func(d *AppData) *EditableContent { return &d.EditableContent }, DefaultEditableContent),
	valueField("theme", func(d *AppData) *Theme { return &d.Theme }, func() Theme { return ThemeDarkAcademia }),
	overlayField("customColors", func(d *AppData) *CustomColors { return &d.CustomColors }, DefaultCustomColors),
}

// Fields returns the JSON names of every AppData field.
func Fields() []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.name
	}
	return names
}

func lookup(name string) (field, bool) {
	for _, f := range fields {
		if f.name == name {
			return f, true
		}
	}
	return field{}, false
}

// Decode builds an aggregate from stored JSON. Fields missing or null in raw
// take their defaults, editableContent and customColors are overlaid onto
// their defaults key by key, and unknown top-level keys are kept in Extra.
// A field whose stored value has the wrong shape keeps its default. A list
// or label map with some bad entries keeps the readable ones. Either way the
// field is reported in skipped and its stored JSON is kept in Unreadable so a
// save writes it back unchanged. err is only set when raw is not a JSON
// object at all.
func Decode(raw []byte) (d AppData, skipped []string, err error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		return Default(), nil, fmt.Errorf("%w: %v", ErrUnparseable, err)
	}
	if top == nil {
		return Default(), nil, ErrUnparseable
	}

	d = Default()
	for name, value := range top {
		f, ok := lookup(name)
		if !ok {
			if d.Extra == nil {
				d.Extra = make(map[string]json.RawMessage)
			}
			d.Extra[name] = value
			continue
		}
		if err := f.decode(&d, value); err != nil {
			skipped = append(skipped, name)
			if d.Unreadable == nil {
				d.Unreadable = make(map[string]json.RawMessage)
			}
			d.Unreadable[name] = value
		}
	}
	sort.Strings(skipped)
	return d, skipped, nil
}

// DecodeField replaces the named field of d from raw using the same rules as
// Decode, except that any unreadable entry is an error. d may be partially
// updated when an error is returned.
func DecodeField(d *AppData, name string, raw []byte) error {
	f, ok := lookup(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	if err := f.decode(d, raw); err != nil {
		return fmt.Errorf("appdata: decode %s: %w", name, err)
	}
	d.Touch(name)
	return nil
}

// Encode serializes the full aggregate, including Extra keys.
func Encode(d AppData) ([]byte, error) {
	return json.Marshal(d)
}

type plainAppData AppData

// MarshalJSON writes the known fields, with Unreadable ones as they were
// stored, and then any Extra keys that do not collide with them.
func (d AppData) MarshalJSON() ([]byte, error) {
	known, err := json.Marshal(plainAppData(d))
	if err != nil {
		return nil, err
	}
	if len(d.Extra) == 0 && len(d.Unreadable) == 0 {
		return known, nil
	}
	merged := make(map[string]json.RawMessage, len(fields)+len(d.Extra))
	for k, v := range d.Extra {
		merged[k] = v
	}
	var top map[string]json.RawMessage
	if err := json.Unmarshal(known, &top); err != nil {
		return nil, err
	}
	for k, v := range top {
		merged[k] = v
	}
	for k, v := range d.Unreadable {
		if _, ok := lookup(k); ok {
			merged[k] = v
		}
	}
	return json.Marshal(merged)
}

// UnmarshalJSON decodes with Decode's default-filling rules.
func (d *AppData) UnmarshalJSON(raw []byte) error {
	decoded, _, err := Decode(raw)
	if err != nil {
		return err
	}
	*d = decoded
	return nil
}

func isNull(raw json.RawMessage) bool {
	return len(bytes.TrimSpace(raw)) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func sliceField[T any](name string, ptr func(*AppData) *[]T) field {
	return field{name: name, decode: func(d *AppData, raw json.RawMessage) error {
		if isNull(raw) {
			*ptr(d) = []T{}
			return nil
		}
		var elems []json.RawMessage
		if err := json.Unmarshal(raw, &elems); err != nil {
			return err
		}
		v := make([]T, 0, len(elems))
		bad := &partialError{}
		for i, elem := range elems {
			var item T
			if err := json.Unmarshal(elem, &item); err != nil {
				bad.add(strconv.Itoa(i), err)
				continue
			}
			v = append(v, item)
		}
		*ptr(d) = v
		return bad.orNil()
	}}
}

func valueField[T any](name string, ptr func(*AppData) *T, def func() T) field {
	return field{name: name, decode: func(d *AppData, raw json.RawMessage) error {
		if isNull(raw) {
			*ptr(d) = def()
			return nil
		}
		v := def()
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		*ptr(d) = v
		return nil
	}}
}

func overlayField[M ~map[string]string](name string, ptr func(*AppData) *M, def func() M) field {
	return field{name: name, decode: func(d *AppData, raw json.RawMessage) error {
		out := def()
		if isNull(raw) {
			*ptr(d) = out
			return nil
		}
		var stored map[string]json.RawMessage
		if err := json.Unmarshal(raw, &stored); err != nil {
			return err
		}
		bad := &partialError{}
		for _, k := range slices.Sorted(maps.Keys(stored)) {
			if isNull(stored[k]) {
				continue
			}
			var v string
			if err := json.Unmarshal(stored[k], &v); err != nil {
				bad.add(k, err)
				continue
			}
			out[k] = v
		}
		*ptr(d) = out
		return bad.orNil()
	}}
}
