// Package decl implements the rebel declaration helpers.
//
// Struct declares a named product type from a field list. Union declares
// named sum-type storage; unlike the shared storage it stands in for, a
// union Value records which field is active and refuses reads of any other
// field.
//
//	point, _ := decl.Struct("Point", decl.F[prim.Int]("X"), decl.F[prim.Int]("Y"))
//	num, _ := decl.Union("Number", decl.F[prim.Int]("I"), decl.F[prim.Real]("R"))
//
//	v := num.New()
//	_ = v.Set("R", prim.Real(2.5))
//	r, err := decl.As[prim.Real](v, "R") // 2.5, nil
//	_, err = v.Get("I")                  // ErrInactiveField
package decl
