// Copyright 2024 - 2026, the gettext authors
// SPDX-License-Identifier: MIT

package po_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olafura/gettext/po"
)

func TestKeyOfSingular(t *testing.T) {
	k, err := po.KeyOf(&po.Singular{Msgid: po.Text{"foo"}})
	require.NoError(t, err)
	assert.Equal(t, po.Key{ID: "foo"}, k)
}

func TestKeyOfPlural(t *testing.T) {
	k, err := po.KeyOf(&po.Plural{Msgid: po.Text{"foo"}, MsgidPlural: po.Text{"foos"}})
	require.NoError(t, err)
	assert.Equal(t, po.Key{ID: "foo", PluralID: "foos", IsPlural: true}, k)
}

func TestKeyOfWithContext(t *testing.T) {
	k, err := po.KeyOf(&po.Plural{
		Msgctxt:     po.Text{"bar"},
		Msgid:       po.Text{"foo"},
		MsgidPlural: po.Text{"foos"},
	})
	require.NoError(t, err)
	assert.Equal(t, po.Key{Ctx: "bar", ID: "foo", PluralID: "foos", IsPlural: true}, k)
}

func TestKeyOfIgnoresNonIdentityFields(t *testing.T) {
	bare := &po.Singular{Msgid: po.Text{"foo"}}
	decorated := &po.Singular{
		Msgid:      po.Text{"foo"},
		Flags:      po.NewFlags("fuzzy", "elixir-format"),
		References: []po.Reference{{Path: "lib/app.ex", Line: 3}},
		Comments:   []string{"translator note"},
	}

	kb, err := po.KeyOf(bare)
	require.NoError(t, err)

	kd, err := po.KeyOf(decorated)
	require.NoError(t, err)

	assert.Equal(t, kb, kd)
}

func TestKeyOfAbsentAndEmptyContextAgree(t *testing.T) {
	absent, err := po.KeyOf(&po.Singular{Msgid: po.Text{"foo"}})
	require.NoError(t, err)

	empty, err := po.KeyOf(&po.Singular{Msgctxt: po.Text{""}, Msgid: po.Text{"foo"}})
	require.NoError(t, err)

	assert.Equal(t, absent, empty)

	contextual, err := po.KeyOf(&po.Singular{Msgctxt: po.Text{"bar"}, Msgid: po.Text{"foo"}})
	require.NoError(t, err)
	assert.NotEqual(t, absent, contextual)
}

func TestKeyOfFragmentedTextAgreesWithPlain(t *testing.T) {
	plain, err := po.KeyOf(&po.Singular{Msgid: po.Text{"hello world"}})
	require.NoError(t, err)

	fragmented, err := po.KeyOf(&po.Singular{Msgid: po.Text{"hello ", "world"}})
	require.NoError(t, err)

	assert.Equal(t, plain, fragmented)
}

func TestKeyOfMalformedText(t *testing.T) {
	_, err := po.KeyOf(&po.Singular{Msgid: po.Text{"foo", 42}})
	assert.ErrorIs(t, err, po.ErrMalformedText)

	_, err = po.KeyOf(&po.Plural{Msgid: po.Text{"foo"}, MsgidPlural: po.Text{1}})
	assert.ErrorIs(t, err, po.ErrMalformedText)

	_, err = po.KeyOf(&po.Singular{Msgctxt: po.Text{3.14}, Msgid: po.Text{"foo"}})
	assert.ErrorIs(t, err, po.ErrMalformedText)
}

func TestAreSameEquivalenceLaws(t *testing.T) {
	a := &po.Singular{Msgid: po.Text{"foo"}}
	b := &po.Singular{Msgid: po.Text{"foo"}, Comments: []string{"other comment"}}
	c := &po.Singular{Msgid: po.Text{"fo", "o"}}

	// Reflexivity.
	same, err := po.AreSame(a, a)
	require.NoError(t, err)
	assert.True(t, same)

	// Symmetry.
	ab, err := po.AreSame(a, b)
	require.NoError(t, err)

	ba, err := po.AreSame(b, a)
	require.NoError(t, err)
	assert.Equal(t, ab, ba)

	// Transitivity.
	bc, err := po.AreSame(b, c)
	require.NoError(t, err)

	ac, err := po.AreSame(a, c)
	require.NoError(t, err)

	assert.True(t, ab && bc && ac)
}

func TestAreSameDiscriminatesVariants(t *testing.T) {
	s := &po.Singular{Msgid: po.Text{"foo"}}
	p := &po.Plural{Msgid: po.Text{"foo"}, MsgidPlural: po.Text{"foos"}}

	same, err := po.AreSame(s, p)
	require.NoError(t, err)
	assert.False(t, same)
}

func TestAreSameDifferentContext(t *testing.T) {
	a := &po.Singular{Msgid: po.Text{"foo"}}
	b := &po.Singular{Msgctxt: po.Text{"bar"}, Msgid: po.Text{"foo"}}

	same, err := po.AreSame(a, b)
	require.NoError(t, err)
	assert.False(t, same)
}

func TestFindSame(t *testing.T) {
	t1 := &po.Singular{Msgid: po.Text{"one"}}
	t2 := &po.Plural{Msgid: po.Text{"two"}, MsgidPlural: po.Text{"twos"}}
	t3 := &po.Singular{Msgid: po.Text{"three"}}
	entries := []po.Message{t1, t2, t3}

	target := &po.Plural{Msgid: po.Text{"two"}, MsgidPlural: po.Text{"twos"}}

	found, err := po.FindSame(entries, target)
	require.NoError(t, err)
	assert.Same(t, po.Message(t2), found)
}

func TestFindSameNotFound(t *testing.T) {
	entries := []po.Message{&po.Singular{Msgid: po.Text{"one"}}}

	found, err := po.FindSame(entries, &po.Singular{Msgid: po.Text{"two"}})
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestFindSameFirstMatchWins(t *testing.T) {
	first := &po.Singular{Msgid: po.Text{"dup"}, Comments: []string{"first"}}
	second := &po.Singular{Msgid: po.Text{"dup"}, Comments: []string{"second"}}
	entries := []po.Message{first, second}

	found, err := po.FindSame(entries, &po.Singular{Msgid: po.Text{"dup"}})
	require.NoError(t, err)
	assert.Same(t, po.Message(first), found)
}

func TestFindSameMalformedTarget(t *testing.T) {
	entries := []po.Message{&po.Singular{Msgid: po.Text{"one"}}}

	_, err := po.FindSame(entries, &po.Singular{Msgid: po.Text{42}})
	assert.ErrorIs(t, err, po.ErrMalformedText)
}

func TestKeyLess(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		a, b po.Key
		want bool
	}{
		{"ByCtx", po.Key{Ctx: "a", ID: "z"}, po.Key{Ctx: "b", ID: "a"}, true},
		{"ByID", po.Key{ID: "a"}, po.Key{ID: "b"}, true},
		{"SingularBeforePlural", po.Key{ID: "a"}, po.Key{ID: "a", PluralID: "as", IsPlural: true}, true},
		{"ByPluralID", po.Key{ID: "a", PluralID: "as", IsPlural: true}, po.Key{ID: "a", PluralID: "azz", IsPlural: true}, true},
		{"Equal", po.Key{ID: "a"}, po.Key{ID: "a"}, false},
		{"Reversed", po.Key{ID: "b"}, po.Key{ID: "a"}, false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := tc.a.Less(tc.b); got != tc.want {
				t.Errorf("Less(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "foo", po.Key{ID: "foo"}.String())
	assert.Equal(t, "bar\x04foo", po.Key{Ctx: "bar", ID: "foo"}.String())
}
