// Package flow gives the rebel loop keywords a Go form.
//
// Most of the vocabulary maps onto Go statements directly and has no code
// here:
//
//	IF(c) THEN ... ELIF(d) THEN ... ELSE ... END  →  if c { ... } else if d { ... } else { ... }
//	WHILE(c) / LOOP(c)                           →  for c { ... }
//	UNTIL(c)                                     →  for !(c) { ... }
//	FOREVER                                      →  for { ... }
//	FOR(init, cond, incr)                        →  for init; cond; incr { ... }
//	BREAK / CONTINUE / RETURN(v)                 →  break / continue / return v
//	FUN(type, name, args...)                     →  func name(args...) type
//	BEGIN / DO / THEN, DONE / END                →  { and }
//
// The functions in this package are the same loops as range-over-func
// iterators, for when the loop shape has to be passed around as a value:
//
//	for i := range flow.Range(1, 5, 1) { ... } // 1, 2, 3, 4, 5
//	for p := range flow.ForEach(items) { p.N++ }
package flow
