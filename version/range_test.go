package version

import "testing"

func mustRange(t *testing.T, req string) UnaffectedRange {
	t.Helper()
	r, err := ParseReq(req)
	if err != nil {
		t.Fatalf("ParseReq(%q): %v", req, err)
	}
	ur, err := VersionReqToUnaffectedRange(r)
	if err != nil {
		t.Fatalf("VersionReqToUnaffectedRange(%q): %v", req, err)
	}
	return ur
}

func affectedString(r AffectedRange) (lo, hi string) {
	lo, hi = "-inf", "+inf"
	if r.Introduced != nil {
		lo = r.Introduced.String()
	}
	if r.Fixed != nil {
		hi = r.Fixed.String()
	}
	return lo, hi
}

// TestInvertS3 covers spec scenario S3: unaffected = ["< 1.0.0"],
// patched = [">= 2.0.0"]; expected affected range [1.0.0, 2.0.0).
func TestInvertS3(t *testing.T) {
	ranges := []UnaffectedRange{
		mustRange(t, "< 1.0.0"),
		mustRange(t, ">= 2.0.0"),
	}
	out, err := Invert(ranges)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 {
		t.Fatalf("got %d ranges, want 1", len(out))
	}
	lo, hi := affectedString(out[0])
	if lo != "1.0.0" || hi != "2.0.0" {
		t.Errorf("got [%s, %s), want [1.0.0, 2.0.0)", lo, hi)
	}
}

// TestInvertS4 covers spec scenario S4: patched = ["^1.2.3"] alone.
// Expected unaffected range [1.2.3, 2.0.0-0); expected affected ranges
// (-inf, 1.2.3) and [2.0.0-0, +inf).
func TestInvertS4(t *testing.T) {
	ur := mustRange(t, "^1.2.3")
	if ur.Start.Kind != Inclusive || ur.Start.Ver.String() != "1.2.3" {
		t.Fatalf("unexpected start bound: %+v", ur.Start)
	}
	if ur.End.Kind != Exclusive || ur.End.Ver.String() != "2.0.0-0" {
		t.Fatalf("unexpected end bound: %+v", ur.End)
	}

	out, err := Invert([]UnaffectedRange{ur})
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 {
		t.Fatalf("got %d ranges, want 2", len(out))
	}
	lo0, hi0 := affectedString(out[0])
	if lo0 != "-inf" || hi0 != "1.2.3" {
		t.Errorf("range 0: got [%s, %s), want [-inf, 1.2.3)", lo0, hi0)
	}
	lo1, hi1 := affectedString(out[1])
	if lo1 != "2.0.0-0" || hi1 != "+inf" {
		t.Errorf("range 1: got [%s, %s), want [2.0.0-0, +inf)", lo1, hi1)
	}
}

func TestInvertEmpty(t *testing.T) {
	out, err := Invert(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0].Introduced != nil || out[0].Fixed != nil {
		t.Errorf("empty input should invert to a single unbounded range, got %+v", out)
	}
}

func TestInvertOverlapRejected(t *testing.T) {
	ranges := []UnaffectedRange{
		mustRange(t, ">= 1.0.0"),
		mustRange(t, "< 2.0.0"),
	}
	if _, err := Invert(ranges); err == nil {
		t.Fatal("expected overlap error, got nil")
	}
}

func TestOverlapSymmetry(t *testing.T) {
	a := mustRange(t, ">= 1.0.0")
	b := mustRange(t, "< 2.0.0")
	if Overlap(a, b) != Overlap(b, a) {
		t.Error("overlap is not symmetric")
	}
	if !Overlap(a, a) {
		t.Error("a range should overlap itself")
	}
}

func TestOverlapBoundary(t *testing.T) {
	// [1.2.3, +inf) and (-inf, 1.2.3) are disjoint.
	a := UnaffectedRange{Start: InclusiveBound(MustParse("1.2.3")), End: UnboundedBound}
	b := UnaffectedRange{Start: UnboundedBound, End: ExclusiveBound(MustParse("1.2.3"))}
	if Overlap(a, b) {
		t.Error("expected disjoint ranges")
	}
	// [1.2.3, +inf) and (-inf, 1.2.3] overlap.
	c := UnaffectedRange{Start: UnboundedBound, End: InclusiveBound(MustParse("1.2.3"))}
	if !Overlap(a, c) {
		t.Error("expected overlapping ranges")
	}
}

func TestVersionReqToUnaffectedRangeRejectsTooManyComparators(t *testing.T) {
	req, err := ParseReq(">= 1.0.0, < 2.0.0, >= 3.0.0")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := VersionReqToUnaffectedRange(req); err == nil {
		t.Fatal("expected error for 3-comparator requirement")
	}
}

func TestVersionReqToUnaffectedRangeRejectsCaretWithCompanion(t *testing.T) {
	req, err := ParseReq("^1.0.0, < 2.0.0")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := VersionReqToUnaffectedRange(req); err == nil {
		t.Fatal("expected error for '^' sharing a requirement")
	}
}
