package jsgen

import (
	"errors"
	"strings"
	"testing"

	"oxjs/internal/ast"
	"oxjs/internal/parser"
	"oxjs/internal/source"
)

func parseItems(t *testing.T, src string) []ast.Item {
	t.Helper()
	fs := source.NewFileSet()
	f, err := fs.AddVirtual("test.rs", []byte(src))
	if err != nil {
		t.Fatal(err)
	}
	file, err := parser.ParseFile(f)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	return file.Items
}

// translateSrc translates every item and joins the fragments, without
// the preamble, so tests can look at the generated code directly.
func translateSrc(t *testing.T, src string) string {
	t.Helper()
	var frags []string
	for _, item := range parseItems(t, src) {
		frag, err := TranslateItem(item)
		if err != nil {
			t.Fatalf("translate error: %v", err)
		}
		frags = append(frags, frag)
	}
	return strings.Join(frags, "\n\n")
}

func translateErr(t *testing.T, src string) error {
	t.Helper()
	for _, item := range parseItems(t, src) {
		if _, err := TranslateItem(item); err != nil {
			return err
		}
	}
	t.Fatalf("expected a translation error for %q", src)
	return nil
}

func wantContains(t *testing.T, got string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestFunctionBody(t *testing.T) {
	got := translateSrc(t, `fn f() -> i32 { 2 - 3 * 2 }`)
	want := "function f() {\n  return 2 - 3 * 2;\n}"
	if got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestSameScopeShadowing(t *testing.T) {
	got := translateSrc(t, `
fn f() {
    let x = 1;
    let x = x + 1;
    println!("{}", x);
}`)
	wantContains(t, got,
		"const x = 1;",
		"const x_1 = x + 1;",
		"console.log(`${x_1}`);")
}

func TestSiblingScopesIsolated(t *testing.T) {
	got := translateSrc(t, `
fn f() {
    {
        let y = 1;
    }
    {
        let y = 2;
    }
}`)
	wantContains(t, got, "const y = 1;", "const y = 2;")
	if strings.Contains(got, "y_1") {
		t.Errorf("sibling scope leaked a rename:\n%s", got)
	}
}

func TestMatchOptional(t *testing.T) {
	got := translateSrc(t, `
fn double(o: Option<i32>) -> i32 {
    match o {
        Some(v) => v * 2,
        None => 0,
    }
}`)
	wantContains(t, got,
		"const _temp1 = o;",
		"if (_temp1 !== null && _temp1 !== undefined) {",
		"const v = _temp1;",
		"return v * 2;",
		"if ((_temp1 === null || _temp1 === undefined)) {",
		"return 0;",
		"}).call(this)")
}

func TestMatchTupleBindings(t *testing.T) {
	got := translateSrc(t, `
fn pair() -> i32 {
    match (1, 2) {
        (x, y) => x + y,
    }
}`)
	wantContains(t, got,
		"const _temp1 = [1, 2];",
		"const x = _temp1[0];",
		"const y = _temp1[1];",
		"return x + y;")
	if strings.Contains(got, "return undefined;") {
		t.Errorf("unconditional arm should end the ladder:\n%s", got)
	}
}

func TestMatchGuardSeesBindings(t *testing.T) {
	got := translateSrc(t, `
fn classify(n: i32) -> i32 {
    match n {
        v if v > 10 => 1,
        _ => 0,
    }
}`)
	idxBind := strings.Index(got, "const v = _temp1;")
	idxGuard := strings.Index(got, "if (v > 10) {")
	if idxBind < 0 || idxGuard < 0 || idxGuard < idxBind {
		t.Fatalf("guard must evaluate after its bindings:\n%s", got)
	}
	wantContains(t, got, "return 0;")
}

func TestMatchVariantPayload(t *testing.T) {
	got := translateSrc(t, `
fn area(s: Shape) -> f64 {
    match s {
        Shape::Circle(r) => r * r,
        Shape::Point => 0.0,
    }
}`)
	wantContains(t, got,
		"_temp1 !== null && typeof _temp1 === 'object' && _temp1.type === 'Circle'",
		"const r = _temp1.value0;",
		"_temp1 === 'Point'")
}

func TestMatchResultArms(t *testing.T) {
	got := translateSrc(t, `
fn unwrap_or_zero(r: Result<i32, String>) -> i32 {
    match r {
        Ok(v) => v,
        Err(_) => 0,
    }
}`)
	wantContains(t, got,
		"_temp1 && _temp1.ok !== undefined",
		"const v = _temp1.ok;",
		"_temp1 && _temp1.error !== undefined")
}

func TestStructClass(t *testing.T) {
	got := translateSrc(t, `struct Point { x: i32, y: i32 }`)
	want := `class Point {
  constructor(x, y) {
    this.x = x;
    this.y = y;
  }
  toJSON() {
    return { x: this.x, y: this.y };
  }
  static fromJSON(json) {
    return new Point(json.x, json.y);
  }
}`
	if got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestEnumCompanion(t *testing.T) {
	got := translateSrc(t, `enum Color { Red, Rgb(i32, i32, i32) }`)
	want := `const Color = {
  Red: 'Red',
  Rgb: function(value0, value1, value2) {
    return { type: 'Rgb', value0: value0, value1: value1, value2: value2 };
  }
};
function isColor(value) {
  const tags = ['Red', 'Rgb'];
  if (typeof value === 'string') {
    return tags.includes(value);
  }
  return value !== null && typeof value === 'object' && tags.includes(value.type);
}`
	if got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestImplMethodsAndStatics(t *testing.T) {
	got := translateSrc(t, `
struct Point { x: f64, y: f64 }
impl Point {
    fn norm(&self) -> f64 {
        (self.x * self.x + self.y * self.y).sqrt()
    }
    fn origin() -> Point {
        Point { x: 0.0, y: 0.0 }
    }
}`)
	wantContains(t, got,
		"Point.prototype.norm = function() {",
		"return Math.sqrt((this.x * this.x + this.y * this.y));",
		"Point.origin = function() {",
		"return new Point(0.0, 0.0);")
}

func TestSelfLiteralInStatic(t *testing.T) {
	got := translateSrc(t, `
impl Point {
    fn origin() -> Self {
        Self { x: 0.0, y: 0.0 }
    }
}`)
	wantContains(t, got,
		"const _temp1 = new Point();",
		"_temp1.x = 0.0;",
		"_temp1.y = 0.0;",
		"return _temp1;")
}

func TestUniversalLenDispatch(t *testing.T) {
	got := translateSrc(t, `fn total(v: Vec<i32>) -> i32 { v.len() }`)
	wantContains(t, got,
		"((obj) => obj.length !== undefined ? obj.length : Object.keys(obj).length)(v)")
}

func TestUniversalInsertRemove(t *testing.T) {
	got := translateSrc(t, `
fn edit(m: HashMap<String, i32>) {
    m.insert("k", 1);
    m.remove("k");
    if m.contains_key("k") {
        println!("still here");
    }
}`)
	wantContains(t, got,
		"obj.splice ? obj.splice(key, 0, val) : obj[key] = val",
		"obj.splice ? obj.splice(key, 1)[0]",
		`typeof obj.has === "function" ? obj.has(key) : Object.prototype.hasOwnProperty.call(obj, key)`)
}

func TestUnknownMacroFails(t *testing.T) {
	err := translateErr(t, `fn f() { custom_thing!(1); }`)
	var ue *UnsupportedError
	if !errors.As(err, &ue) {
		t.Fatalf("want UnsupportedError, got %T: %v", err, err)
	}
	if !strings.Contains(err.Error(), "custom_thing!") {
		t.Fatalf("error does not name the macro: %v", err)
	}
}

func TestFormatNamedAndDebug(t *testing.T) {
	got := translateSrc(t, `
fn show(name: String, v: Vec<i32>) -> String {
    format!("{name}: {:?}", v)
}`)
	wantContains(t, got, "return `${name}: ${debug_repr(v)}`;")
}

func TestStringConcatTemplate(t *testing.T) {
	got := translateSrc(t, `
fn greet(who: String) -> String {
    "hello, ".to_string() + who.as_str()
}`)
	wantContains(t, got, "${who}`")
	if strings.Contains(got, `" + `) {
		t.Errorf("string concat should use a template literal:\n%s", got)
	}
}

func TestIfLetStatement(t *testing.T) {
	got := translateSrc(t, `
fn first(v: Option<i32>) -> i32 {
    if let Some(x) = v {
        return x;
    }
    0
}`)
	wantContains(t, got,
		"const _temp1 = v;",
		"if (_temp1 !== null && _temp1 !== undefined) {",
		"const x = _temp1;",
		"return x;",
		"return 0;")
}

func TestWhileLet(t *testing.T) {
	got := translateSrc(t, `
fn drain(v: Vec<i32>) -> i32 {
    let mut total = 0;
    while let Some(x) = v.pop() {
        total += x;
    }
    total
}`)
	wantContains(t, got,
		"while (true) {",
		"const _temp1 = v.pop();",
		"if (!(_temp1 !== null && _temp1 !== undefined)) { break; }",
		"const x = _temp1;",
		"total += x;")
}

func TestForRangeLoops(t *testing.T) {
	got := translateSrc(t, `
fn sum(n: i32) -> i32 {
    let mut s = 0;
    for i in 0..n {
        s += i;
    }
    for j in 0..=n {
        s += j;
    }
    s
}`)
	wantContains(t, got,
		"for (let i = 0; i < n; i++) {",
		"for (let j = 0; j <= n; j++) {")
}

func TestForEnumerate(t *testing.T) {
	got := translateSrc(t, `
fn show(v: Vec<i32>) {
    for (i, x) in v.iter().enumerate() {
        println!("{} {}", i, x);
    }
}`)
	wantContains(t, got,
		"for (const [i, x] of (v).entries()) {",
		"console.log(`${i} ${x}`);")
}

func TestTryOperator(t *testing.T) {
	got := translateSrc(t, `
fn run(r: Result<i32, String>) -> i32 {
    let v = r?;
    v
}`)
	wantContains(t, got, "throw res.error", "return res && res.ok !== undefined ? res.ok : res;")
}

func TestReservedWordBinding(t *testing.T) {
	got := translateSrc(t, `
fn f() {
    let new = 1;
    println!("{}", new);
}`)
	wantContains(t, got, "const new_ = 1;", "console.log(`${new_}`);")
}

func TestVecMacroForms(t *testing.T) {
	got := translateSrc(t, `
fn build() -> Vec<i32> {
    let a = vec![1, 2, 3];
    let b = vec![0; 4];
    let c: Vec<i32> = vec![];
    a
}`)
	wantContains(t, got,
		"const a = [1, 2, 3];",
		"const b = Array.from({length: 4}, () => 0);",
		"const c = [];")
}

func TestAssertEq(t *testing.T) {
	got := translateSrc(t, `fn f() { assert_eq!(1 + 1, 2); }`)
	wantContains(t, got, `assert((1 + 1) === (2), "assertion failed: 1 + 1 == 2");`)
}

func TestPanicMacro(t *testing.T) {
	got := translateSrc(t, `fn f() { panic!("boom: {}", 1); }`)
	wantContains(t, got, "panic(`boom: ${1}`);")
}

func TestCasts(t *testing.T) {
	got := translateSrc(t, `
fn f(x: i32) {
    let a = x as f64;
    let b = x as String;
    let c = x as bool;
}`)
	wantContains(t, got,
		"const a = Number(x);",
		"const b = String(x);",
		"const c = Boolean(x);")
}

func TestClosures(t *testing.T) {
	got := translateSrc(t, `
fn f() {
    let add = |a, b| a + b;
    let second = |_, b| b;
}`)
	wantContains(t, got,
		"const add = (a, b) => a + b;",
		"const second = (_unused_0, b) => b;")
}

func TestIfExpressionValue(t *testing.T) {
	got := translateSrc(t, `
fn pick(c: bool) -> i32 {
    let v = if c { 1 } else { 2 };
    v
}`)
	wantContains(t, got,
		"const v = (function() {",
		"if (c) {",
		"return 1;",
		"} else {",
		"return 2;",
		"}).call(this);")
}

func TestCharLiteral(t *testing.T) {
	got := translateSrc(t, `fn f() -> char { 'a' }`)
	wantContains(t, got, `return "a";`)
}

func TestUseAndModSkipMarkers(t *testing.T) {
	got := translateSrc(t, `
use std::collections::HashMap;
mod helpers;
fn f() {}
`)
	wantContains(t, got,
		"// skipped: use",
		"HashMap",
		"// skipped: mod helpers")
}

func TestTraitUnsupported(t *testing.T) {
	err := translateErr(t, `trait Shape { fn area(&self) -> f64; }`)
	var ue *UnsupportedError
	if !errors.As(err, &ue) {
		t.Fatalf("want UnsupportedError, got %T: %v", err, err)
	}
}

func TestTranslateFileDeterministic(t *testing.T) {
	src := `
struct Point { x: i32, y: i32 }
fn main() {
    let p = Point { x: 10, y: 20 };
    println!("{} {}", p.x, p.y);
}`
	fs := source.NewFileSet()
	f, err := fs.AddVirtual("test.rs", []byte(src))
	if err != nil {
		t.Fatal(err)
	}
	file, err := parser.ParseFile(f)
	if err != nil {
		t.Fatal(err)
	}
	first, err := TranslateFile(file)
	if err != nil {
		t.Fatal(err)
	}
	second, err := TranslateFile(file)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Fatal("repeated translation is not byte-identical")
	}
	if !strings.HasPrefix(first, Preamble()) {
		t.Error("assembled output does not start with the preamble")
	}
	if strings.Index(first, "class Point") > strings.Index(first, "function main") {
		t.Error("fragment order does not follow source order")
	}
}

func TestTempCounterPerDeclaration(t *testing.T) {
	got := translateSrc(t, `
fn a(o: Option<i32>) -> i32 {
    match o {
        Some(v) => v,
        None => 0,
    }
}
fn b(o: Option<i32>) -> i32 {
    match o {
        Some(v) => v,
        None => 0,
    }
}`)
	if strings.Contains(got, "_temp2") {
		t.Fatalf("temp counter leaked across declarations:\n%s", got)
	}
}

func TestTripleRebindingStaysDistinct(t *testing.T) {
	got := translateSrc(t, `
fn f() -> i32 {
    let x = 1;
    let x = 2;
    let x = 3;
    let y = x;
    y
}`)
	wantContains(t, got,
		"const x = 1;",
		"const x_1 = 2;",
		"const x_2 = 3;",
		"const y = x_2;")
}

func TestWildcardParamAvoidsUserBinding(t *testing.T) {
	got := translateSrc(t, `
fn f() {
    let _unused_0 = 1;
    let cb = |_, b| b;
}`)
	wantContains(t, got, "const cb = (_unused_0_1, b) => b;")
}

func TestRangeIndexAvoidsUserBinding(t *testing.T) {
	got := translateSrc(t, `
fn f() {
    let _i = 1;
    let xs = _i.._i + 2;
}`)
	wantContains(t, got,
		"Array.from({length: (_i + 2) - (_i)}, (_, _i_1) => (_i) + _i_1)")
}

func TestVariantFieldNamedType(t *testing.T) {
	decl := &ast.EnumDecl{
		Name: "Event",
		Variants: []ast.EnumVariant{
			{Name: "Click", Fields: []ast.StructField{{Name: "type"}, {Name: "x"}}},
		},
	}
	if _, err := TranslateItem(decl); err == nil {
		t.Fatal("expected a translation error for a field named type")
	} else {
		var ue *UnsupportedError
		if !errors.As(err, &ue) {
			t.Fatalf("want UnsupportedError, got %T: %v", err, err)
		}
		if !strings.Contains(err.Error(), "Event.Click") {
			t.Fatalf("error does not name the variant: %v", err)
		}
	}
}
