package catalog

func params(params ...string) []string { return params }

var entries = []Entry{
	// Primitive aliasing
	{Name: "BOOL", Group: GroupPrimitive, Kind: KindType, Expansion: "int", Go: "prim.Bool", Note: "alias of int32"},
	{Name: "CHAR", Group: GroupPrimitive, Kind: KindType, Expansion: "char", Go: "prim.Char", Note: "alias of int8"},
	{Name: "BYTE", Group: GroupPrimitive, Kind: KindType, Expansion: "unsigned char", Go: "prim.Byte", Note: "alias of uint8"},
	{Name: "INT", Group: GroupPrimitive, Kind: KindType, Expansion: "int", Go: "prim.Int", Note: "alias of int32"},
	{Name: "FLOAT", Group: GroupPrimitive, Kind: KindType, Expansion: "float", Go: "prim.Float", Note: "alias of float32"},
	{Name: "REAL", Group: GroupPrimitive, Kind: KindType, Expansion: "double", Go: "prim.Real", Note: "alias of float64"},
	{Name: "VOID", Group: GroupPrimitive, Kind: KindType, Expansion: "void", Go: "prim.Void", Note: "alias of struct{}"},
	{Name: "CHAR_PTR", Group: GroupPrimitive, Kind: KindType, Expansion: "char *", Go: "prim.CharPtr", Note: "alias of *int8"},
	{Name: "BYTE_PTR", Group: GroupPrimitive, Kind: KindType, Expansion: "unsigned char *", Go: "prim.BytePtr", Note: "alias of *uint8"},
	{Name: "INT_PTR", Group: GroupPrimitive, Kind: KindType, Expansion: "int *", Go: "prim.IntPtr", Note: "alias of *int32"},
	{Name: "FLOAT_PTR", Group: GroupPrimitive, Kind: KindType, Expansion: "float *", Go: "prim.FloatPtr", Note: "alias of *float32"},
	{Name: "REAL_PTR", Group: GroupPrimitive, Kind: KindType, Expansion: "double *", Go: "prim.RealPtr", Note: "alias of *float64"},
	{Name: "VOID_PTR", Group: GroupPrimitive, Kind: KindType, Expansion: "void *", Go: "prim.VoidPtr", Note: "alias of unsafe.Pointer"},
	{Name: "TRUE", Group: GroupPrimitive, Kind: KindConst, Expansion: "1", Go: "prim.True"},
	{Name: "FALSE", Group: GroupPrimitive, Kind: KindConst, Expansion: "0", Go: "prim.False"},
	{Name: "NULL", Group: GroupPrimitive, Kind: KindObject, Expansion: "((VOID_PTR)0)", Go: "nil"},
	{Name: "CAST", Group: GroupPrimitive, Kind: KindFunction, Params: params("type", "value"), Expansion: "((type) (value))", Go: "type(value)", Note: "num.SafeCast fails instead of wrapping"},

	// Structural declaration helpers
	{Name: "STRUCT", Group: GroupDeclaration, Kind: KindFunction, Params: params("name", Variadic), Expansion: "typedef struct { __VA_ARGS__ } name;", Go: "decl.Struct(name, fields...)", Note: "product type, fields in order"},
	{Name: "UNION", Group: GroupDeclaration, Kind: KindFunction, Params: params("name", Variadic), Expansion: "typedef union { __VA_ARGS__ } name;", Go: "decl.Union(name, fields...)", Note: "tagged; reading an inactive field fails"},

	// Control-flow keyword substitution
	{Name: "BEGIN", Group: GroupControl, Kind: KindObject, Expansion: "{", Go: "{"},
	{Name: "DO", Group: GroupControl, Kind: KindObject, Expansion: "{", Go: "{"},
	{Name: "THEN", Group: GroupControl, Kind: KindObject, Expansion: "{", Go: "{"},
	{Name: "DONE", Group: GroupControl, Kind: KindObject, Expansion: "}", Go: "}"},
	{Name: "END", Group: GroupControl, Kind: KindObject, Expansion: "}", Go: "}"},
	{Name: "IF", Group: GroupControl, Kind: KindFunction, Params: params("condition"), Expansion: "if (condition)", Go: "if condition"},
	{Name: "ELIF", Group: GroupControl, Kind: KindFunction, Params: params("condition"), Expansion: "else if (condition)", Go: "else if condition"},
	{Name: "ELSE", Group: GroupControl, Kind: KindObject, Expansion: "else", Go: "else"},
	{Name: "WHILE", Group: GroupControl, Kind: KindFunction, Params: params("condition"), Expansion: "while (condition)", Go: "for condition", Note: "flow.While"},
	{Name: "FOREVER", Group: GroupControl, Kind: KindObject, Expansion: "for (;;)", Go: "for", Note: "flow.Forever"},
	{Name: "FOR", Group: GroupControl, Kind: KindFunction, Params: params("init", "condition", "increment"), Expansion: "for (init; condition; increment)", Go: "for init; condition; increment", Note: "flow.For"},
	{Name: "RANGE", Group: GroupControl, Kind: KindFunction, Params: params("start", "end", "step"), Expansion: "for (INT i = (start); i <= (end); i += (step))", Go: "for i := range flow.Range(start, end, step)", Note: "inclusive; induction variable i"},
	{Name: "LOOP", Group: GroupControl, Kind: KindFunction, Params: params("condition"), Expansion: "while (condition)", Go: "for condition", Note: "flow.Loop"},
	{Name: "UNTIL", Group: GroupControl, Kind: KindFunction, Params: params("condition"), Expansion: "while (!(condition))", Go: "for !(condition)", Note: "flow.Until"},
	{Name: "FOREACH", Group: GroupControl, Kind: KindFunction, Params: params("item", "container"), Expansion: "for (typeof(*(container)) *item = (container); item < (container) + ARRAY_SIZE(container); ++item)", Go: "for item := range flow.ForEach(container)", Note: "item points into the sequence"},
	{Name: "FORIN", Group: GroupControl, Kind: KindFunction, Params: params("type", "item", "container"), Expansion: "for (type *item = (container); item < (container) + ARRAY_SIZE(container); ++item)", Go: "for _, item := range flow.ForIn[type](container)", Note: "item points into the sequence"},
	{Name: "BREAK", Group: GroupControl, Kind: KindObject, Expansion: "break", Go: "break"},
	{Name: "CONTINUE", Group: GroupControl, Kind: KindObject, Expansion: "continue", Go: "continue"},
	{Name: "RETURN", Group: GroupControl, Kind: KindFunction, Params: params("value"), Expansion: "return (value)", Go: "return value"},
	{Name: "FUN", Group: GroupControl, Kind: KindFunction, Params: params("type", "name", Variadic), Expansion: "type name(__VA_ARGS__)", Go: "func name(...) type"},
	{Name: "MAP", Group: GroupControl, Kind: KindFunction, Params: params("function", "collection"), Expansion: "for (typeof(*(collection)) *it = (collection); it < (collection) + ARRAY_SIZE(collection); ++it) { function(*it); }", Go: "flow.Map(function, collection)", Note: "results discarded"},

	// Numeric & bitwise utilities
	{Name: "MAX", Group: GroupUtility, Kind: KindFunction, Params: params("a", "b"), Expansion: "((a) > (b) ? (a) : (b))", Go: "num.Max(a, b)", Note: "ties return b"},
	{Name: "MIN", Group: GroupUtility, Kind: KindFunction, Params: params("a", "b"), Expansion: "((a) < (b) ? (a) : (b))", Go: "num.Min(a, b)", Note: "ties return b"},
	{Name: "ABS", Group: GroupUtility, Kind: KindFunction, Params: params("x"), Expansion: "((x) < 0 ? -(x) : (x))", Go: "num.Abs(x)"},
	{Name: "CLAMP", Group: GroupUtility, Kind: KindFunction, Params: params("x", "min", "max"), Expansion: "MIN(MAX((x), (min)), (max))", Go: "num.Clamp(x, min, max)", Note: "unspecified when min > max"},
	{Name: "ARRAY_SIZE", Group: GroupUtility, Kind: KindFunction, Params: params("array"), Expansion: "(sizeof(array) / sizeof(*(array)))", Go: "num.ArraySize(array)", Note: "fixed-size sequences only"},
	{Name: "IN_RANGE", Group: GroupUtility, Kind: KindFunction, Params: params("x", "min", "max"), Expansion: "((x) >= (min) && (x) <= (max))", Go: "num.InRange(x, min, max)", Note: "inclusive both ends"},
	{Name: "SQR", Group: GroupUtility, Kind: KindFunction, Params: params("x"), Expansion: "((x) * (x))", Go: "num.Sqr(x)"},
	{Name: "CBD", Group: GroupUtility, Kind: KindFunction, Params: params("x"), Expansion: "((x) * (x) * (x))", Go: "num.Cbd(x)"},
	{Name: "ROUND", Group: GroupUtility, Kind: KindFunction, Params: params("x"), Expansion: "((x) < 0 ? ((x) - 0.5f) : ((x) + 0.5f))", Go: "num.Round(x)", Note: "caller truncates; num.RoundInt does both"},
	{Name: "FLOOR", Group: GroupUtility, Kind: KindFunction, Params: params("x"), Expansion: "((x) < 0 ? ((x) - 1) : (x))", Go: "num.Floor(x)", Note: "approximate; relies on truncation"},
	{Name: "CEIL", Group: GroupUtility, Kind: KindFunction, Params: params("x"), Expansion: "((x) < 0 ? (x) : ((x) + 1))", Go: "num.Ceil(x)", Note: "approximate; relies on truncation"},
	{Name: "SIGN", Group: GroupUtility, Kind: KindFunction, Params: params("x"), Expansion: "((x) < 0 ? -1 : 1)", Go: "num.Sign(x)", Note: "SIGN(0) is 1"},
	{Name: "IS_POWER_OF_2", Group: GroupUtility, Kind: KindFunction, Params: params("x"), Expansion: "(((x) & ((x) - 1)) == 0)", Go: "num.IsPowerOf2(x)", Note: "IS_POWER_OF_2(0) is true"},
	{Name: "IS_ALIGNED", Group: GroupUtility, Kind: KindFunction, Params: params("x", "a"), Expansion: "(((x) & ((a) - 1)) == 0)", Go: "num.IsAligned(x, a)", Note: "a must be a power of two"},
	{Name: "ALIGN", Group: GroupUtility, Kind: KindFunction, Params: params("x", "a"), Expansion: "(((x) + ((a) - 1)) & ~((a) - 1))", Go: "num.Align(x, a)", Note: "a must be a power of two"},
	{Name: "ROUND_UP", Group: GroupUtility, Kind: KindFunction, Params: params("x", "a"), Expansion: "(((x) + ((a) - 1)) & ~((a) - 1))", Go: "num.RoundUp(x, a)", Note: "a must be a power of two"},
	{Name: "ROUND_DOWN", Group: GroupUtility, Kind: KindFunction, Params: params("x", "a"), Expansion: "((x) & ~((a) - 1))", Go: "num.RoundDown(x, a)", Note: "a must be a power of two"},
}
