package types

import "testing"

func plus(contig string, begin, end int) Location {
	return Location{Contig: contig, Begin: begin, End: end, Strand: StrandPlus}
}

func TestNewLocationValidation(t *testing.T) {
	tests := []struct {
		name   string
		contig string
		begin  int
		end    int
		strand Strand
		ok     bool
	}{
		{"valid", "c1", 100, 1600, StrandPlus, true},
		{"single base", "c1", 5, 5, StrandMinus, true},
		{"begin after end", "c1", 500, 100, StrandPlus, false},
		{"zero coordinate", "c1", 0, 10, StrandPlus, false},
		{"no contig", "", 1, 10, StrandPlus, false},
		{"bad strand", "c1", 1, 10, Strand("fwd"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLocation(tt.contig, tt.begin, tt.end, tt.strand)
			if (err == nil) != tt.ok {
				t.Errorf("NewLocation err = %v, ok = %v", err, tt.ok)
			}
		})
	}
}

func TestLocationLength(t *testing.T) {
	if got := plus("c1", 100, 1600).Length(); got != 1501 {
		t.Errorf("Length = %d, want 1501", got)
	}
	if got := plus("c1", 5, 5).Length(); got != 1 {
		t.Errorf("single-base Length = %d, want 1", got)
	}
}

func TestLocationOverlaps(t *testing.T) {
	base := plus("c1", 100, 800)
	tests := []struct {
		name  string
		other Location
		want  bool
	}{
		{"contained", plus("c1", 200, 300), true},
		{"extends right", plus("c1", 750, 1600), true},
		{"touching endpoint", plus("c1", 800, 900), true},
		{"single shared base", plus("c1", 100, 100), true},
		{"adjacent", plus("c1", 801, 900), false},
		{"disjoint", plus("c1", 5000, 5300), false},
		{"other contig", plus("c2", 100, 800), false},
		{"other strand", Location{Contig: "c1", Begin: 100, End: 800, Strand: StrandMinus}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Overlaps(tt.other); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
			if got := tt.other.Overlaps(base); got != tt.want {
				t.Errorf("Overlaps is not symmetric")
			}
		})
	}
}

func TestLocationMerge(t *testing.T) {
	a := plus("c1", 100, 800)
	b := plus("c1", 750, 1600)
	merged, err := a.Merge(b)
	if err != nil {
		t.Fatal(err)
	}
	if merged != plus("c1", 100, 1600) {
		t.Errorf("Merge = %v", merged)
	}
	// Contained interval never shrinks the union.
	inner := plus("c1", 200, 300)
	merged, err = a.Merge(inner)
	if err != nil {
		t.Fatal(err)
	}
	if merged != a {
		t.Errorf("Merge with contained = %v, want %v", merged, a)
	}
	if _, err := a.Merge(plus("c2", 100, 800)); err == nil {
		t.Error("Merge across contigs succeeded")
	}
}

func TestLocationReverse(t *testing.T) {
	l := plus("c1", 100, 200)
	r := l.Reverse()
	if r.Strand != StrandMinus || r.Begin != 100 || r.End != 200 {
		t.Errorf("Reverse = %v", r)
	}
	if r.Reverse() != l {
		t.Error("double Reverse is not the identity")
	}
}

func TestLocationString(t *testing.T) {
	if got := plus("c1", 100, 1600).String(); got != "c1_100+1600" {
		t.Errorf("String = %q", got)
	}
	m := Location{Contig: "c2", Begin: 5, End: 9, Strand: StrandMinus}
	if got := m.String(); got != "c2_5-9" {
		t.Errorf("String = %q", got)
	}
}

func TestLocationCompare(t *testing.T) {
	a := plus("c1", 100, 200)
	tests := []struct {
		name  string
		other Location
		want  int
	}{
		{"same", a, 0},
		{"later contig", plus("c2", 100, 200), -1},
		{"later begin", plus("c1", 150, 200), -1},
		{"later end", plus("c1", 100, 300), -1},
		{"reverse strand after", Location{Contig: "c1", Begin: 100, End: 200, Strand: StrandMinus}, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Compare(tt.other)
			if sign(got) != tt.want {
				t.Errorf("Compare = %d, want sign %d", got, tt.want)
			}
		})
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
