package iotakit_test

// ticket only knows its successor.
// The tags field makes it incomparable.
type ticket struct {
	N    int
	tags []string
}

func (t ticket) Succ() ticket { return ticket{N: t.N + 1, tags: t.tags} }

// bag is incomparable, but it defines its own equality.
type bag struct{ items []int }

func (b bag) Succ() bag { return bag{items: append(append([]int{}, b.items...), len(b.items))} }

func (b bag) Equal(oth bag) bool { return len(b.items) == len(oth.items) }

// release is comparable, and it can only step forward.
type release struct{ Major, Minor int }

func (r release) Succ() release { return release{Major: r.Major, Minor: r.Minor + 1} }

// milestone is a bound for release that knows how to compare itself with it.
type milestone struct{ Minor int }

func (m milestone) Equal(r release) bool { return r.Minor == m.Minor }

// freeze is a release bound that release can't compare with, and freeze can't compare with release either.
type freeze struct{ Minor int }

// labelled is comparable by its type, but its label may hold an incomparable value.
type labelled struct {
	N     int
	Label any
}

func (l labelled) Succ() labelled { return labelled{N: l.N + 1, Label: l.Label} }

// weekday is cyclic, thus it has no meaningful distance.
type weekday struct{ d int }

func (w weekday) Succ() weekday { return weekday{d: (w.d + 1) % 7} }
func (w weekday) Pred() weekday { return weekday{d: (w.d + 6) % 7} }

// day counts days since an epoch, and supports random access with an int32 distance.
type day struct{ n int32 }

func (d day) Succ() day          { return day{n: d.n + 1} }
func (d day) Pred() day          { return day{n: d.n - 1} }
func (d day) Sub(oth day) int32  { return d.n - oth.n }
func (d day) Add(n int32) day    { return day{n: d.n + n} }
func (d day) Equal(oth day) bool { return d.n == oth.n }

// port is a named integer type, and its methods are irrelevant for the sequence.
type port uint16

func (p port) Succ() port { return p + 10 }

// page has the random access methods with a difference type of int.
type page struct{ n int }

func (p page) Succ() page       { return page{n: p.n + 1} }
func (p page) Pred() page       { return page{n: p.n - 1} }
func (p page) Sub(oth page) int { return p.n - oth.n }
func (p page) Add(n int) page   { return page{n: p.n + n} }
