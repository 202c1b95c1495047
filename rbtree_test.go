// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package rbtree

import (
	"fmt"
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/cockroachdb/crlib/crstrings"
	"github.com/cockroachdb/crlib/testutils/leaktest"
	"github.com/cockroachdb/datadriven"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestEmpty(t *testing.T) {
	for _, tr := range []*Tree[string]{New[string](nil), NewOrdered[string]()} {
		require.True(t, tr.IsEmpty())
		require.Equal(t, 0, tr.Len())
		require.Equal(t, int64(0), tr.Width())
		require.Equal(t, 0, tr.Height())
		require.Nil(t, tr.Root())
		require.Nil(t, tr.First())
		require.Nil(t, tr.Last())
		require.Empty(t, tr.ToList())
		require.Equal(t, "<empty>\n", tr.DebugString())
		requireValid(t, tr)

		n, off, err := tr.SeekPosition(0)
		require.Nil(t, n)
		require.Equal(t, int64(0), off)
		require.True(t, errors.Is(err, ErrOutOfRange), "%v", err)
	}
}

// TestPositionalScenario inserts three elements at the back and searches by
// offset.
func TestPositionalScenario(t *testing.T) {
	tr := New[string](nil)
	tr.InsertBack("foobar", 6)
	tr.InsertBack("hello", 5)
	tr.InsertBack("world", 5)
	requireValid(t, tr)

	require.Equal(t, int64(16), tr.Width())
	require.Equal(t, []Entry[string]{
		{Data: "foobar", Width: 6},
		{Data: "hello", Width: 5},
		{Data: "world", Width: 5},
	}, tr.ToList())
	require.Equal(t, "hello black w=5 sw=16\n  foobar red w=6 sw=6\n  world red w=5 sw=5\n",
		tr.DebugString())

	for _, tc := range []struct {
		offset int64
		data   string
		local  int64
	}{
		{0, "foobar", 0},
		{5, "foobar", 5},
		{6, "hello", 0},
		{10, "hello", 4},
		{11, "world", 0},
		{15, "world", 4},
	} {
		n, local, err := tr.SeekPosition(tc.offset)
		require.NoError(t, err)
		require.Equal(t, tc.data, n.Data(), "offset %d", tc.offset)
		require.Equal(t, tc.local, local, "offset %d", tc.offset)
		require.Equal(t, tc.offset-tc.local, tr.Position(n))
	}
	for _, off := range []int64{-1, 16, 100} {
		_, _, err := tr.SeekPosition(off)
		require.True(t, errors.Is(err, ErrOutOfRange), "offset %d: %v", off, err)
	}
}

func TestInsertFrontShape(t *testing.T) {
	tr := New[string](nil)
	tr.InsertFront("a", 1)
	tr.InsertFront("b", 1)
	tr.InsertFront("c", 1)
	requireValid(t, tr)

	root := tr.Root()
	require.Equal(t, "b", root.Data())
	require.Equal(t, Black, root.Color())
	require.Equal(t, "c", root.Left().Data())
	require.True(t, root.Left().IsRed())
	require.Equal(t, "a", root.Right().Data())
	require.True(t, root.Right().IsRed())
	require.Nil(t, root.Parent())
	require.Equal(t, root, root.Left().Parent())
	require.Equal(t, []string{"c", "b", "a"}, tr.Values())
	require.Equal(t, int64(3), root.SubtreeWidth())

	m := tr.Metrics()
	require.Equal(t, uint64(3), m.Inserts)
	require.Equal(t, uint64(1), m.Rotations)
	require.Equal(t, uint64(1), m.InsertFixups)
}

func TestVariableWidths(t *testing.T) {
	tr := New[string](nil)
	tr.InsertBack("hi", 2)
	tr.InsertBack("bye", 3)
	requireValid(t, tr)
	require.Equal(t, "hi black w=2 sw=5\n  -\n  bye red w=3 sw=3\n", tr.DebugString())
	require.Equal(t, int64(5), tr.Root().SubtreeWidth())
	require.Equal(t, int64(3), tr.Root().Right().SubtreeWidth())
}

func TestInsertInnerCase(t *testing.T) {
	tr := NewOrdered[string]()
	for _, k := range []string{"c", "a", "b"} {
		_, added := tr.Insert(k)
		require.True(t, added)
	}
	requireValid(t, tr)
	require.Equal(t, "b black w=0 sw=0\n  a red w=0 sw=0\n  c red w=0 sw=0\n", tr.DebugString())
	m := tr.Metrics()
	require.Equal(t, uint64(2), m.Rotations)
	require.Equal(t, uint64(1), m.InsertFixups)
}

func TestInsertRecolor(t *testing.T) {
	tr := New[string](nil)
	for _, k := range []string{"a", "b", "c", "d"} {
		tr.InsertBack(k, 1)
	}
	requireValid(t, tr)
	require.Equal(t, strings.TrimLeft(`
b black w=1 sw=4
  a black w=1 sw=1
  c black w=1 sw=2
    -
    d red w=1 sw=1
`, "\n"), tr.DebugString())
}

func TestOrderedSet(t *testing.T) {
	words := strings.Fields("this is a test of the emergency broadcast system this is only a test")
	tr := NewOrdered[string]()
	for _, w := range words {
		tr.Insert(w)
		requireValid(t, tr)
	}
	require.Equal(t, []string{
		"a", "broadcast", "emergency", "is", "of", "only", "system", "test", "the", "this",
	}, tr.Values())
	require.True(t, tr.Contains("broadcast"))
	require.False(t, tr.Contains("radio"))

	n, added := tr.Insert("test")
	require.False(t, added)
	require.Equal(t, "test", n.Data())
	require.Equal(t, 10, tr.Len())

	require.True(t, tr.Delete("broadcast"))
	require.False(t, tr.Contains("broadcast"))
	require.False(t, tr.Delete("broadcast"))
	require.False(t, tr.Delete("radio"))
	require.Equal(t, 9, tr.Len())
	requireValid(t, tr)

	require.Equal(t, "emergency", tr.SeekGE("b").Data())
	require.Equal(t, "is", tr.SeekGE("is").Data())
	require.Nil(t, tr.SeekGE("zebra"))
	require.Equal(t, "a", tr.SeekLT("b").Data())
	require.Nil(t, tr.SeekLT("a"))
	require.Equal(t, "this", tr.SeekLT("zebra").Data())
	require.Equal(t, "only", tr.Get("only").Data())
	require.Nil(t, tr.Get("radio"))
}

func TestRoundTrip(t *testing.T) {
	tr := NewOrdered[int]()
	const n = 1000
	// Insert a permutation.
	for i := 0; i < n; i++ {
		tr.Insert((i * 7919) % n)
	}
	requireValid(t, tr)
	require.Equal(t, n, tr.Len())
	require.LessOrEqual(t, float64(tr.Height()), 2*math.Log2(n+1))

	for i := 0; i < n; i++ {
		require.True(t, tr.Delete((i*104729)%n))
		if i%100 == 0 {
			requireValid(t, tr)
		}
	}
	require.True(t, tr.IsEmpty())
	require.Equal(t, int64(0), tr.Width())
	requireValid(t, tr)
	m := tr.Metrics()
	require.Equal(t, uint64(n), m.Inserts)
	require.Equal(t, uint64(n), m.Deletes)
}

func TestHeightBound(t *testing.T) {
	tr := New[int](nil)
	for i := 0; i < 4096; i++ {
		tr.InsertBack(i, 1)
		if h, bound := tr.Height(), 2*math.Log2(float64(tr.Len()+1)); float64(h) > bound {
			t.Fatalf("height %d exceeds %.2f after %d inserts", h, bound, tr.Len())
		}
	}
	requireValid(t, tr)
}

func TestInsertAfterBefore(t *testing.T) {
	tr := New[string](nil)
	b := tr.InsertBack("b", 1)
	d := tr.InsertAfter(b, "d", 1)
	tr.InsertBefore(b, "a", 1)
	tr.InsertAfter(b, "c", 1)
	tr.InsertAfter(d, "e", 1)
	tr.InsertBefore(d, "cc", 2)
	requireValid(t, tr)
	require.Equal(t, []string{"a", "b", "c", "cc", "d", "e"}, tr.Values())
	require.Equal(t, int64(7), tr.Width())
	require.Equal(t, int64(5), tr.Position(d))

	var fwd, bwd []string
	for n := range tr.All() {
		fwd = append(fwd, n.Data())
	}
	for n := range tr.Backward() {
		bwd = append(bwd, n.Data())
	}
	require.Equal(t, tr.Values(), fwd)
	require.Equal(t, []string{"e", "d", "cc", "c", "b", "a"}, bwd)
	require.Equal(t, "a", tr.First().Data())
	require.Equal(t, "e", tr.Last().Data())
	require.Nil(t, tr.Last().Next())
	require.Nil(t, tr.First().Prev())
}

func TestSetWidth(t *testing.T) {
	tr := New[string](nil)
	var nodes []*Node[string]
	for i := 0; i < 20; i++ {
		nodes = append(nodes, tr.InsertBack(fmt.Sprint(i), 1))
	}
	tr.SetWidth(nodes[7], 10)
	tr.SetWidth(nodes[0], 0)
	requireValid(t, tr)
	require.Equal(t, int64(28), tr.Width())

	n, local, err := tr.SeekPosition(6)
	require.NoError(t, err)
	require.Equal(t, "7", n.Data())
	require.Equal(t, int64(0), local)
	n, local, err = tr.SeekPosition(15)
	require.NoError(t, err)
	require.Equal(t, "7", n.Data())
	require.Equal(t, int64(9), local)
	n, _, err = tr.SeekPosition(0)
	require.NoError(t, err)
	require.Equal(t, "1", n.Data())

	requirePrecondition(t, func() { tr.SetWidth(nodes[1], -1) })
}

func TestRemove(t *testing.T) {
	tr := New[int](nil)
	var nodes []*Node[int]
	for i := 0; i < 50; i++ {
		nodes = append(nodes, tr.InsertBack(i, int64(i%3)))
	}
	for i := 0; i < 50; i += 2 {
		tr.Remove(nodes[i])
		requireValid(t, tr)
	}
	var want []int
	var width int64
	for i := 1; i < 50; i += 2 {
		want = append(want, i)
		width += int64(i % 3)
		// Handles of the remaining nodes stay valid.
		require.Equal(t, i, nodes[i].Data())
	}
	require.Equal(t, want, tr.Values())
	require.Equal(t, width, tr.Width())

	// A removed node can no longer be used as an anchor.
	requirePrecondition(t, func() { tr.Remove(nodes[0]) })
	requirePrecondition(t, func() { tr.InsertAfter(nodes[2], 100, 1) })
}

func TestPreconditions(t *testing.T) {
	pos := New[string](nil)
	ord := NewOrdered[string]()
	a := pos.InsertBack("a", 1)
	other := New[string](nil).InsertBack("x", 1)

	requirePrecondition(t, func() { ord.InsertBack("a", 1) })
	requirePrecondition(t, func() { ord.InsertFront("a", 1) })
	requirePrecondition(t, func() { pos.Insert("a") })
	requirePrecondition(t, func() { pos.Delete("a") })
	requirePrecondition(t, func() { pos.Get("a") })
	requirePrecondition(t, func() { pos.SeekGE("a") })
	requirePrecondition(t, func() { pos.InsertBack("b", -1) })
	requirePrecondition(t, func() { ord.InsertWidth("b", -1) })
	requirePrecondition(t, func() { pos.InsertAfter(other, "b", 1) })
	requirePrecondition(t, func() { pos.InsertBefore(nil, "b", 1) })
	requirePrecondition(t, func() { pos.rotateLeft(a) })
	requirePrecondition(t, func() { pos.rotateRight(a) })
	requireValid(t, pos)
	require.Equal(t, 1, pos.Len())
}

func TestRotatePreservesOrder(t *testing.T) {
	tr := buildTree(t, false, strings.TrimLeft(`
b black w=2
  a black w=1
  d red w=3
    c black w=4
    e black w=5`, "\n"))
	before := tr.ToList()
	d := tr.root.right
	tr.rotateLeft(tr.root)
	require.Equal(t, before, tr.ToList())
	require.Equal(t, d, tr.root)
	require.Equal(t, int64(15), d.subtreeWidth)
	require.Equal(t, int64(7), d.left.subtreeWidth)

	tr.rotateRight(tr.root)
	require.Equal(t, before, tr.ToList())
	require.Equal(t, "b", tr.root.data)
	require.Equal(t, int64(12), tr.root.right.subtreeWidth)
	requireValid(t, tr)
}

func TestDeleteCases(t *testing.T) {
	for _, tc := range []struct {
		name   string
		tree   string
		delete string
		want   string
	}{
		{
			name: "far-nephew-red",
			tree: `
b black w=1
  a black w=1
  d black w=1
    -
    e red w=1`,
			delete: "a",
			want: `
d black w=1 sw=3
  b black w=1 sw=1
  e black w=1 sw=1`,
		},
		{
			name: "near-nephew-red",
			tree: `
b black w=1
  a black w=1
  d black w=1
    c red w=1
    -`,
			delete: "a",
			want: `
c black w=1 sw=3
  b black w=1 sw=1
  d black w=1 sw=1`,
		},
		{
			name: "black-nephews-red-parent",
			tree: `
d black w=1
  b red w=1
    a black w=1
    c black w=1
  e black w=1`,
			delete: "a",
			want: `
d black w=1 sw=4
  b black w=1 sw=2
    -
    c red w=1 sw=1
  e black w=1 sw=1`,
		},
		{
			name: "red-sibling",
			tree: `
b black w=1
  a black w=1
  d red w=1
    c black w=1
    e black w=1`,
			delete: "a",
			want: `
d black w=1 sw=4
  b black w=1 sw=2
    -
    c red w=1 sw=1
  e black w=1 sw=1`,
		},
		{
			name: "mirror-far-nephew-red",
			tree: `
d black w=1
  b black w=1
    a red w=1
    -
  e black w=1`,
			delete: "e",
			want: `
b black w=1 sw=3
  a black w=1 sw=1
  d black w=1 sw=1`,
		},
		{
			name: "two-children-distant-successor",
			tree: `
b black w=1
  a black w=1
  d black w=1
    c red w=1
    e red w=1`,
			delete: "b",
			want: `
c black w=1 sw=4
  a black w=1 sw=1
  d black w=1 sw=2
    -
    e red w=1 sw=1`,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			tr := buildTree(t, true, strings.TrimLeft(tc.tree, "\n"))
			survivors := map[string]*Node[string]{}
			for n := range tr.All() {
				if n.Data() != tc.delete {
					survivors[n.Data()] = n
				}
			}
			require.True(t, tr.Delete(tc.delete))
			requireValid(t, tr)
			require.Equal(t, strings.TrimLeft(tc.want, "\n")+"\n", tr.DebugString())
			// Node handles of the remaining elements are unchanged.
			for n := range tr.All() {
				require.Same(t, survivors[n.Data()], n)
			}
		})
	}
}

func TestConcurrentReaders(t *testing.T) {
	defer leaktest.AfterTest(t)()

	tr := New[int](nil)
	for i := 0; i < 1000; i++ {
		tr.InsertBack(i, 2)
	}
	var wg sync.WaitGroup
	errs := make([]error, 8)
	for g := range errs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for off := int64(g); off < tr.Width(); off += 7 {
				n, local, err := tr.SeekPosition(off)
				if err != nil {
					errs[g] = err
					return
				}
				if n.Data() != int(off/2) || local != off%2 {
					errs[g] = errors.Newf("offset %d: got %d/%d", off, n.Data(), local)
					return
				}
			}
		}()
	}
	wg.Wait()
	for _, err := range errs {
		require.NoError(t, err)
	}
}

func TestDataDriven(t *testing.T) {
	var tr *Tree[string]
	datadriven.RunTest(t, "testdata/tree", func(t *testing.T, td *datadriven.TestData) string {
		var buf strings.Builder
		switch td.Cmd {
		case "new":
			if td.HasArg("ordered") {
				tr = NewOrdered[string]()
			} else {
				tr = New[string](nil)
			}
			return ""

		case "insert-back", "insert-front":
			for _, line := range crstrings.Lines(td.Input) {
				var data string
				var width int64
				if _, err := fmt.Sscan(line, &data, &width); err != nil {
					td.Fatalf(t, "invalid line %q: %v", line, err)
				}
				if td.Cmd == "insert-back" {
					tr.InsertBack(data, width)
				} else {
					tr.InsertFront(data, width)
				}
			}

		case "insert":
			for _, line := range crstrings.Lines(td.Input) {
				key := strings.TrimSpace(line)
				if _, added := tr.Insert(key); !added {
					fmt.Fprintf(&buf, "%s: already present\n", key)
				}
			}

		case "delete":
			for _, line := range crstrings.Lines(td.Input) {
				key := strings.TrimSpace(line)
				if !tr.Delete(key) {
					fmt.Fprintf(&buf, "%s: not found\n", key)
				}
			}

		case "seek":
			var offset int
			td.ScanArgs(t, "offset", &offset)
			n, local, err := tr.SeekPosition(int64(offset))
			if err != nil {
				return fmt.Sprintf("error: %v\n", err)
			}
			return fmt.Sprintf("%s %d\n", n.Data(), local)

		case "list":
			for _, e := range tr.ToList() {
				fmt.Fprintf(&buf, "%s %d\n", e.Data, e.Width)
			}
			return buf.String()

		case "stats":
			return fmt.Sprintf("len=%d width=%d height=%d\n", tr.Len(), tr.Width(), tr.Height())

		default:
			td.Fatalf(t, "unknown command %q", td.Cmd)
		}
		if err := tr.CheckInvariants(); err != nil {
			td.Fatalf(t, "%+v", err)
		}
		buf.WriteString(tr.DebugString())
		return buf.String()
	})
}
