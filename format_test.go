package slist_test

import (
	"bytes"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mgnsk/slist"
	. "github.com/onsi/gomega"
)

func TestString(t *testing.T) {
	for _, tc := range []struct {
		name   string
		values []int
		want   string
	}{
		{"empty", nil, "NULL"},
		{"single", []int{7}, "7->NULL"},
		{"negative", []int{-1, 0, -12}, "-1->0->-12->NULL"},
		{"extremes", []int{math.MaxInt, math.MinInt}, strconv.Itoa(math.MaxInt) + "->" + strconv.Itoa(math.MinInt) + "->NULL"},
		{"sequence", []int{3, 1, 4, 1, 5}, "3->1->4->1->5->NULL"},
	} {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			g := NewWithT(t)

			l := newList(g, tc.values...)
			g.Expect(l.String()).To(Equal(tc.want))

			text, err := l.MarshalText()
			g.Expect(err).NotTo(HaveOccurred())
			g.Expect(string(text)).To(Equal(tc.want))
			g.Expect(cap(text)).To(Equal(len(tc.want)))
		})
	}
}

func TestStringLongList(t *testing.T) {
	g := NewWithT(t)

	var want strings.Builder
	l := slist.New()

	for i := 0; i < 10000; i++ {
		g.Expect(l.PushFront(i)).To(Succeed())
	}

	for i := 9999; i >= 0; i-- {
		want.WriteString(strconv.Itoa(i))
		want.WriteString("->")
	}
	want.WriteString("NULL")

	g.Expect(l.String()).To(Equal(want.String()))
}

func TestAppendText(t *testing.T) {
	g := NewWithT(t)

	l := newList(g, 1, 2)

	b, err := l.AppendText([]byte("list: "))
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(string(b)).To(Equal("list: 1->2->NULL"))
}

func TestParse(t *testing.T) {
	for _, tc := range []struct {
		text string
		want []int
	}{
		{"NULL", []int{}},
		{"  NULL\n", []int{}},
		{"3->1->4->NULL", []int{3, 1, 4}},
		{"3 ->1 ->4 ->NULL", []int{3, 1, 4}},
		{"-5 -> 0 -> 5 -> NULL", []int{-5, 0, 5}},
	} {
		l, err := slist.Parse(tc.text)
		if err != nil {
			t.Fatalf("parse %q: %v", tc.text, err)
		}

		if diff := cmp.Diff(tc.want, l.Values()); diff != "" {
			t.Errorf("parse %q mismatch (-want +got):\n%s", tc.text, diff)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	for _, text := range []string{
		"",
		"1->2",
		"1->2->null",
		"1->->NULL",
		"a->NULL",
		"NULL->NULL",
		"1->NULL->2",
	} {
		g := NewWithT(t)

		_, err := slist.Parse(text)
		g.Expect(err).To(MatchError(slist.ErrSyntax), "text %q", text)
	}
}

func TestUnmarshalTextReplacesContents(t *testing.T) {
	g := NewWithT(t)

	counter := slist.NewCounter(0)
	l := slist.New(slist.WithAllocator(counter))

	g.Expect(l.PushBack(9)).To(Succeed())
	g.Expect(l.UnmarshalText([]byte("1->2->3->NULL"))).To(Succeed())

	g.Expect(l.Values()).To(Equal([]int{1, 2, 3}))
	g.Expect(l.Len()).To(Equal(3))
	g.Expect(counter.Live()).To(Equal(3))

	expectValidChain(g, l)
}

func TestUnmarshalTextAllocationFailure(t *testing.T) {
	g := NewWithT(t)

	counter := slist.NewCounter(3)
	l := slist.New(slist.WithAllocator(counter))

	g.Expect(l.PushBack(9)).To(Succeed())
	g.Expect(l.UnmarshalText([]byte("1->2->3->NULL"))).To(MatchError(slist.ErrAllocation))

	g.Expect(l.Values()).To(Equal([]int{9}))
	g.Expect(counter.Live()).To(Equal(1))
}

func TestFprint(t *testing.T) {
	for _, tc := range []struct {
		name string
		list func(g *WithT) *slist.List
		want string
	}{
		{
			name: "absent",
			list: func(*WithT) *slist.List { return nil },
			want: "LIST IS NULL\n",
		},
		{
			name: "freed",
			list: func(g *WithT) *slist.List {
				l := newList(g, 1)
				l.Free()
				return l
			},
			want: "LIST IS NULL\n",
		},
		{
			name: "empty",
			list: func(*WithT) *slist.List { return slist.New() },
			want: "LIST IS EMPTY\n",
		},
		{
			name: "non-empty",
			list: func(g *WithT) *slist.List { return newList(g, 1, 2) },
			want: "1->2->NULL\n",
		},
	} {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			g := NewWithT(t)

			var buf bytes.Buffer
			g.Expect(tc.list(g).Fprint(&buf)).To(Succeed())
			g.Expect(buf.String()).To(Equal(tc.want))
		})
	}
}
