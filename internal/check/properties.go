package check

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"slices"

	"rebel/decl"
	"rebel/flow"
	"rebel/internal/catalog"
	"rebel/internal/diag"
	"rebel/internal/eval"
	"rebel/num"
	"rebel/prim"
)

// Default returns the built-in properties in catalogue order.
func Default() []Property {
	var props []Property
	for _, a := range prim.Aliases() {
		props = append(props, Property{Entry: a.Name, Name: "alias-size", Run: aliasSize(a)})
	}
	props = append(props,
		Property{Entry: "INT", Name: "alias-arithmetic", Run: aliasArithmetic},
		Property{Entry: "STRUCT", Name: "struct-layout", Run: structLayout},
		Property{Entry: "UNION", Name: "union-inactive-read", Run: unionInactiveRead},
		Property{Entry: "RANGE", Name: "range-inclusive", Run: rangeInclusive},
		Property{Entry: "FOREACH", Name: "foreach-order", Run: foreachOrder},
		Property{Entry: "MAP", Name: "map-order", Run: mapOrder},
		Property{Entry: "MAX", Name: "max-tie", Run: maxTie},
		Property{Entry: "CLAMP", Name: "clamp-in-range", Run: clampInRange},
		Property{Entry: "IN_RANGE", Name: "in-range-boundaries", Run: inRangeBoundaries},
		Property{Entry: "SIGN", Name: "sign-of-zero", Run: signOfZero},
		Property{Entry: "IS_POWER_OF_2", Name: "power-of-two", Run: powerOfTwo},
		Property{Entry: "ALIGN", Name: "align-bounds", Run: alignBounds},
		Property{Entry: "ROUND_UP", Name: "round-up-is-align", Run: roundUpIsAlign},
		Property{Entry: "ALIGN", Name: "end-to-end", Run: endToEnd},
		Property{Entry: "", Name: "single-evaluation", Run: singleEvaluation},
		Property{Entry: "", Name: "catalogue-complete", Run: catalogueComplete},
	)
	return props
}

// hostSize is the size the host language gives each spelling on a target.
func hostSize(c *Case, a prim.Alias) (int, bool) {
	if a.Pointer {
		return c.Layout.Target.PtrSize, true
	}
	switch a.Host {
	case "char", "unsigned char":
		return 1, true
	case "int", "float":
		return 4, true
	case "double":
		return 8, true
	}
	// void has no size
	return 0, false
}

func aliasSize(a prim.Alias) func(c *Case) {
	return func(c *Case) {
		size, err := c.Layout.SizeOf(a.Type)
		if err != nil {
			c.Report(diag.SevError, diag.CheckLayoutError, err.Error())
			return
		}
		if want, ok := hostSize(c, a); ok && size != want {
			c.Report(diag.SevError, diag.CheckAliasMismatch,
				fmt.Sprintf("sizeof(%s) is %d on %s, host %s is %d", a.Name, size, c.Layout.Target.Triple, a.Host, want))
		}
		if c.Layout.Target.Triple == "host" && uintptr(size) != a.Type.Size() {
			c.Report(diag.SevError, diag.CheckAliasMismatch,
				fmt.Sprintf("layout size %d differs from runtime size %d for %s", size, a.Type.Size(), a.Name))
		}
	}
}

func aliasArithmetic(c *Case) {
	for range c.Samples {
		x, y := c.Rand.Int32(), c.Rand.Int32()
		if got, want := prim.Int(x)*prim.Int(y)+prim.Int(y), x*y+y; got != want {
			c.Errorf("INT arithmetic %d differs from int32 %d", got, want)
			return
		}
		b := uint8(c.Rand.UintN(256))
		if got, want := prim.Byte(b)+prim.Byte(200), b+200; got != want {
			c.Errorf("BYTE arithmetic %d differs from uint8 %d", got, want)
			return
		}
		f := c.Rand.Float64()
		if got, want := prim.Real(f)/3, f/3; got != want {
			c.Errorf("REAL arithmetic %v differs from float64 %v", got, want)
			return
		}
	}
	if prim.IsTrue(prim.False) || !prim.IsTrue(prim.Truth(true)) {
		c.Errorf("TRUE/FALSE do not round-trip through Truth")
	}
}

func structLayout(c *Case) {
	point, err := decl.Struct("Point",
		decl.F[prim.Char]("tag"),
		decl.F[prim.Real]("x"),
		decl.F[prim.Int]("y"),
		decl.F[prim.IntPtr]("next"),
	)
	if err != nil {
		c.Errorf("declare: %v", err)
		return
	}
	l, err := point.Layout(c.Layout)
	if err != nil {
		c.Report(diag.SevError, diag.CheckLayoutError, err.Error())
		return
	}
	if !slices.IsSorted(l.FieldOffsets) || num.RoundDown(l.Size, l.Align) != l.Size {
		c.Errorf("offsets %v with size %d and align %d are not a valid struct layout", l.FieldOffsets, l.Size, l.Align)
	}
	for i, off := range l.FieldOffsets {
		if !num.IsAligned(off, l.FieldAligns[i]) {
			c.Errorf("field %d at offset %d is not aligned to %d", i, off, l.FieldAligns[i])
		}
	}
	if c.Layout.Target.Triple != "host" {
		return
	}
	t := point.Type()
	for i := range t.NumField() {
		if got, want := l.FieldOffsets[i], int(t.Field(i).Offset); got != want {
			c.Errorf("field %s at %d, runtime puts it at %d", t.Field(i).Name, got, want)
		}
	}
	if int(t.Size()) != l.Size {
		c.Errorf("size %d, runtime size %d", l.Size, t.Size())
	}
}

func unionInactiveRead(c *Case) {
	shape, err := decl.Union("Shape", decl.F[prim.Int]("radius"), decl.F[prim.Real]("side"))
	if err != nil {
		c.Errorf("declare: %v", err)
		return
	}
	v := shape.New()
	if _, err := v.Get("radius"); !errors.Is(err, decl.ErrInactiveField) {
		c.Errorf("read of empty union: got %v, want ErrInactiveField", err)
	}
	if err := v.Set("side", prim.Real(2.5)); err != nil {
		c.Errorf("set side: %v", err)
		return
	}
	if _, err := v.Get("radius"); !errors.Is(err, decl.ErrInactiveField) {
		c.Errorf("read of inactive field: got %v, want ErrInactiveField", err)
	}
	if got, err := decl.As[prim.Real](v, "side"); err != nil || got != 2.5 {
		c.Errorf("read of active field: got %v, %v", got, err)
	}
	tagged, err := shape.Layout(c.Layout)
	if err != nil {
		c.Report(diag.SevError, diag.CheckLayoutError, err.Error())
		return
	}
	shared, err := shape.StorageLayout(c.Layout)
	if err != nil {
		c.Report(diag.SevError, diag.CheckLayoutError, err.Error())
		return
	}
	if tagged.Size < shared.Size+tagged.TagSize {
		c.Errorf("tagged size %d cannot hold tag %d and payload %d", tagged.Size, tagged.TagSize, shared.Size)
	}
}

func rangeInclusive(c *Case) {
	got := slices.Collect(flow.Range(1, 5, 1))
	if !slices.Equal(got, []int{1, 2, 3, 4, 5}) {
		c.Errorf("RANGE(1,5,1) visited %v", got)
	}
	for range c.Samples {
		start := c.Rand.IntN(200) - 100
		end := start + c.Rand.IntN(100)
		step := 1 + c.Rand.IntN(7)
		n, last := 0, start-step
		for i := range flow.Range(start, end, step) {
			if i != last+step {
				c.Errorf("RANGE(%d,%d,%d) jumped from %d to %d", start, end, step, last, i)
				return
			}
			last = i
			n++
		}
		if want := (end-start)/step + 1; n != want {
			c.Errorf("RANGE(%d,%d,%d) ran %d times, want %d", start, end, step, n, want)
			return
		}
	}
}

func sample(c *Case) []int {
	s := make([]int, c.Rand.IntN(64))
	for i := range s {
		s[i] = c.Rand.Int()
	}
	return s
}

func foreachOrder(c *Case) {
	for range c.Samples {
		s := sample(c)
		i := 0
		for p := range flow.ForEach(s) {
			if p != &s[i] {
				c.Errorf("iteration %d does not point at element %d", i, i)
				return
			}
			i++
		}
		if i != len(s) {
			c.Errorf("FOREACH ran %d times over %d elements", i, len(s))
			return
		}
		for j, p := range flow.ForIn(s) {
			if p != &s[j] {
				c.Errorf("FORIN index %d does not point at its element", j)
				return
			}
		}
	}
}

func mapOrder(c *Case) {
	s := sample(c)
	var seen []int
	flow.Map(func(v int) { seen = append(seen, v) }, s)
	if !slices.Equal(seen, s) {
		c.Errorf("MAP visited %d elements out of order", len(seen))
	}
}

func maxTie(c *Case) {
	negZero := math.Copysign(0, -1)
	if math.Signbit(num.Max(negZero, 0.0)) {
		c.Errorf("MAX(-0, +0) returned a, want b")
	}
	if !math.Signbit(num.Min(0.0, negZero)) {
		c.Errorf("MIN(+0, -0) returned a, want b")
	}
}

func clampInRange(c *Case) {
	for range c.Samples {
		x := c.Rand.Int64N(2000) - 1000
		lo := c.Rand.Int64N(1000) - 500
		hi := lo + c.Rand.Int64N(500)
		got := num.Clamp(x, lo, hi)
		if got < lo || got > hi {
			c.Errorf("CLAMP(%d,%d,%d) = %d is outside the range", x, lo, hi, got)
			return
		}
		if lo <= x && x <= hi && got != x {
			c.Errorf("CLAMP(%d,%d,%d) = %d, want x unchanged", x, lo, hi, got)
			return
		}
	}
}

func inRangeBoundaries(c *Case) {
	for range c.Samples {
		lo := c.Rand.Int64N(1000) - 500
		hi := lo + c.Rand.Int64N(500)
		cases := []struct {
			x    int64
			want bool
		}{{lo, true}, {hi, true}, {lo - 1, false}, {hi + 1, false}}
		for _, tc := range cases {
			if got := num.InRange(tc.x, lo, hi); got != tc.want {
				c.Errorf("IN_RANGE(%d,%d,%d) = %v, want %v", tc.x, lo, hi, got, tc.want)
				return
			}
		}
		f := float64(lo) + 0.5
		if !num.InRange(f, float64(lo), float64(hi)+1) || num.InRange(math.Nextafter(float64(lo), math.Inf(-1)), float64(lo), float64(hi)) {
			c.Errorf("IN_RANGE float boundaries wrong around %d", lo)
			return
		}
	}
}

func signOfZero(c *Case) {
	if num.Sign(0) != 1 || num.Sign(0.0) != 1 {
		c.Errorf("SIGN(0) is not 1")
	}
	for range c.Samples {
		x := c.Rand.Int64N(math.MaxInt32) + 1
		if num.Sign(x) != 1 || num.Sign(-x) != -1 {
			c.Errorf("SIGN(%d) = %d, SIGN(%d) = %d", x, num.Sign(x), -x, num.Sign(-x))
			return
		}
	}
}

func powerOfTwo(c *Case) {
	if !num.IsPowerOf2(uint64(0)) {
		c.Errorf("IS_POWER_OF_2(0) is false, want true")
	}
	for k := range 64 {
		if x := uint64(1) << k; !num.IsPowerOf2(x) {
			c.Errorf("IS_POWER_OF_2(%d) is false", x)
		}
	}
	for range c.Samples {
		x := c.Rand.Uint64()
		if want := bits.OnesCount64(x) <= 1; num.IsPowerOf2(x) != want {
			c.Errorf("IS_POWER_OF_2(%d) = %v, want %v", x, !want, want)
			return
		}
	}
	for _, x := range []uint64{3, 5, 6, 7, 9} {
		if num.IsPowerOf2(x) {
			c.Errorf("IS_POWER_OF_2(%d) is true", x)
		}
	}
}

func alignBounds(c *Case) {
	for range c.Samples {
		x := c.Rand.Uint64N(1 << 40)
		a := uint64(1) << c.Rand.UintN(13)
		up, down := num.Align(x, a), num.RoundDown(x, a)
		switch {
		case !(down <= x && x <= up):
			c.Errorf("ROUND_DOWN(%d,%d)=%d <= x <= ALIGN=%d does not hold", x, a, down, up)
		case up%a != 0 || down%a != 0:
			c.Errorf("ALIGN(%d,%d)=%d or ROUND_DOWN=%d is not a multiple", x, a, up, down)
		case up-down != 0 && up-down != a:
			c.Errorf("ALIGN(%d,%d)-ROUND_DOWN = %d, want 0 or %d", x, a, up-down, a)
		case !num.IsAligned(up, a):
			c.Errorf("IS_ALIGNED(ALIGN(%d,%d), %d) is false", x, a, a)
		default:
			continue
		}
		return
	}
}

func roundUpIsAlign(c *Case) {
	for range c.Samples {
		x := c.Rand.Int64N(1 << 30)
		a := int64(1) << c.Rand.UintN(12)
		if num.RoundUp(x, a) != num.Align(x, a) {
			c.Errorf("ROUND_UP(%d,%d) differs from ALIGN", x, a)
			return
		}
	}
}

func endToEnd(c *Case) {
	cases := []struct {
		name string
		args []string
		want eval.Operand
	}{
		{"ALIGN", []string{"13", "8"}, eval.Int(16)},
		{"ROUND_DOWN", []string{"13", "8"}, eval.Int(8)},
		{"IS_ALIGNED", []string{"16", "8"}, eval.Bool(true)},
		{"IS_ALIGNED", []string{"13", "8"}, eval.Bool(false)},
	}
	for _, tc := range cases {
		got, err := eval.Apply(tc.name, tc.args...)
		if err != nil {
			c.Errorf("%s(%s): %v", tc.name, tc.args[0]+","+tc.args[1], err)
			continue
		}
		if got != tc.want {
			c.Errorf("%s(%s,%s) = %s, want %s", tc.name, tc.args[0], tc.args[1], got, tc.want)
		}
	}
}

// singleEvaluation counts argument evaluations of the Go forms and notes,
// for each utility, how often its textual form would evaluate them.
func singleEvaluation(c *Case) {
	calls := 0
	arg := func(v int64) int64 { calls++; return v }
	forms := []struct {
		name string
		n    int
		run  func()
	}{
		{"MAX", 2, func() { num.Max(arg(1), arg(2)) }},
		{"MIN", 2, func() { num.Min(arg(1), arg(2)) }},
		{"ABS", 1, func() { num.Abs(arg(-1)) }},
		{"CLAMP", 3, func() { num.Clamp(arg(5), arg(0), arg(3)) }},
		{"IN_RANGE", 3, func() { num.InRange(arg(5), arg(0), arg(3)) }},
		{"SQR", 1, func() { num.Sqr(arg(3)) }},
		{"CBD", 1, func() { num.Cbd(arg(3)) }},
		{"FLOOR", 1, func() { num.Floor(arg(-3)) }},
		{"CEIL", 1, func() { num.Ceil(arg(-3)) }},
		{"SIGN", 1, func() { num.Sign(arg(-3)) }},
		{"IS_POWER_OF_2", 1, func() { num.IsPowerOf2(arg(8)) }},
		{"IS_ALIGNED", 2, func() { num.IsAligned(arg(16), arg(8)) }},
		{"ALIGN", 2, func() { num.Align(arg(13), arg(8)) }},
		{"ROUND_UP", 2, func() { num.RoundUp(arg(13), arg(8)) }},
		{"ROUND_DOWN", 2, func() { num.RoundDown(arg(13), arg(8)) }},
	}
	for _, f := range forms {
		calls = 0
		f.run()
		if calls != f.n {
			c.Errorf("%s evaluated %d arguments %d times", f.name, f.n, calls)
		}
		hz, err := catalog.Hazards(f.name)
		if err != nil {
			c.Errorf("%s: %v", f.name, err)
			continue
		}
		var notes []diag.Note
		for _, h := range hz {
			if h.Repeated() {
				notes = append(notes, diag.Note{Msg: fmt.Sprintf("%s appears %d times in the expansion", h.Param, h.Count)})
			}
		}
		if len(notes) > 0 {
			c.Report(diag.SevInfo, diag.CheckTextualHazard,
				fmt.Sprintf("textual %s repeats arguments; the Go form evaluates each once", f.name), notes...)
		}
	}
}

func catalogueComplete(c *Case) {
	for _, a := range prim.Aliases() {
		if e, ok := catalog.Lookup(a.Name); !ok || e.Group != catalog.GroupPrimitive {
			c.Report(diag.SevError, diag.CheckCatalogueMissing, fmt.Sprintf("alias %s has no primitive entry", a.Name))
		}
	}
	evaluable := eval.Names()
	for _, e := range catalog.ByGroup(catalog.GroupUtility) {
		if !slices.Contains(evaluable, e.Name) {
			c.Report(diag.SevError, diag.CheckCatalogueMissing, fmt.Sprintf("utility %s cannot be evaluated", e.Name))
		}
	}
	for _, e := range catalog.All() {
		if !e.Macro() {
			continue
		}
		if _, err := catalog.Hazards(e.Name); err != nil {
			c.Report(diag.SevError, diag.CheckCatalogueMissing, fmt.Sprintf("%s does not expand: %v", e.Name, err))
		}
	}
}
