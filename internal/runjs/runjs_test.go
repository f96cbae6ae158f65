package runjs

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"oxjs/internal/jsgen"
	"oxjs/internal/parser"
	"oxjs/internal/source"
)

// compile translates a whole source program for execution tests.
func compile(t *testing.T, src string) string {
	t.Helper()
	fs := source.NewFileSet()
	f, err := fs.AddVirtual("main.rs", []byte(src))
	if err != nil {
		t.Fatal(err)
	}
	file, err := parser.ParseFile(f)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	js, err := jsgen.TranslateFile(file)
	if err != nil {
		t.Fatalf("translate error: %v", err)
	}
	return js
}

// runProgram compiles, executes, and returns captured stdout lines.
func runProgram(t *testing.T, src string, opts Options) []string {
	t.Helper()
	js := compile(t, src)
	res, err := Run(js, opts)
	if err != nil {
		t.Fatalf("execution error: %v\nprogram:\n%s", err, js)
	}
	return res.Stdout
}

func wantLines(t *testing.T, got, want []string) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("stdout = %#v, want %#v", got, want)
	}
}

func TestConsoleCapture(t *testing.T) {
	res, err := Run(`console.log("a", 1); console.error("oops");`, Options{})
	if err != nil {
		t.Fatal(err)
	}
	wantLines(t, res.Stdout, []string{"a 1"})
	wantLines(t, res.Stderr, []string{"oops"})
}

func TestEvaluateError(t *testing.T) {
	_, err := Run(`throw new Error("boom");`, Options{})
	var ee *ExecError
	if !errors.As(err, &ee) || ee.Stage != "evaluate" {
		t.Fatalf("want evaluate ExecError, got %v", err)
	}
}

func TestMissingEntry(t *testing.T) {
	// default entry is optional
	if _, err := Run(`const x = 1;`, Options{}); err != nil {
		t.Fatalf("optional main should not fail: %v", err)
	}
	// an explicit entry is not
	_, err := Run(`const x = 1;`, Options{Entry: "start"})
	var ee *ExecError
	if !errors.As(err, &ee) || ee.Stage != "call" {
		t.Fatalf("want call ExecError, got %v", err)
	}
}

func TestArithmeticPrecedence(t *testing.T) {
	got := runProgram(t, `
fn main() {
    println!("{}", 2 - 3 * 2);
}`, Options{})
	wantLines(t, got, []string{"-4"})
}

func TestOptionalMatch(t *testing.T) {
	got := runProgram(t, `
fn doubled(o: Option<i32>) -> i32 {
    match o {
        Some(v) => v * 2,
        None => 0,
    }
}
fn main() {
    println!("{}", doubled(Some(42)));
    println!("{}", doubled(None));
}`, Options{})
	wantLines(t, got, []string{"84", "0"})
}

func TestTupleMatchBindings(t *testing.T) {
	got := runProgram(t, `
fn main() {
    let p = (1, 2);
    match p {
        (x, y) => println!("{} {}", x, y),
    }
}`, Options{})
	wantLines(t, got, []string{"1 2"})
}

func TestScopeIsolationAndShadowing(t *testing.T) {
	got := runProgram(t, `
fn main() {
    let x = 1;
    let x = x + 1;
    {
        let y = 10;
        println!("{}", y);
    }
    {
        let y = 20;
        println!("{}", y);
    }
    println!("{}", x);
}`, Options{})
	wantLines(t, got, []string{"10", "20", "2"})
}

func TestStructRoundTrip(t *testing.T) {
	js := compile(t, `struct Point { x: i32, y: i32 }`) + `
const p = new Point(10, 20);
const q = Point.fromJSON(JSON.parse(JSON.stringify(p)));
console.log(q.x, q.y);
console.log(q instanceof Point);
`
	res, err := Run(js, Options{})
	if err != nil {
		t.Fatal(err)
	}
	wantLines(t, res.Stdout, []string{"10 20", "true"})
}

func TestEnumPredicate(t *testing.T) {
	js := compile(t, `enum Color { Red, Rgb(i32, i32, i32) }`) + `
console.log(isColor(Color.Red));
console.log(isColor(Color.Rgb(1, 2, 3)));
console.log(isColor("nope"));
`
	res, err := Run(js, Options{})
	if err != nil {
		t.Fatal(err)
	}
	wantLines(t, res.Stdout, []string{"true", "true", "false"})
}

func TestDualLenDispatch(t *testing.T) {
	got := runProgram(t, `
fn size(c: Vec<i32>) -> i32 {
    c.len()
}
fn main() {
    let v = vec![1, 2, 3, 4, 5];
    let m = HashMap::new();
    m.insert("a", 1);
    m.insert("b", 2);
    m.insert("c", 3);
    println!("{}", size(v));
    println!("{}", size(m));
}`, Options{})
	wantLines(t, got, []string{"5", "3"})
}

func TestFormatQuotedComma(t *testing.T) {
	got := runProgram(t, `
fn main() {
    let pair = (1, 2);
    println!("x = {}, y = {}", pair.0, pair.1);
}`, Options{})
	wantLines(t, got, []string{"x = 1, y = 2"})
}

func TestUniversalInsertRemove(t *testing.T) {
	got := runProgram(t, `
fn main() {
    let v = vec![1, 2, 4];
    v.insert(2, 3);
    println!("{:?}", v);
    v.remove(0);
    println!("{:?}", v);
    let m = HashMap::new();
    m.insert("k", 7);
    println!("{}", m.remove("k"));
    println!("{}", m.contains_key("k"));
}`, Options{})
	wantLines(t, got, []string{"[1, 2, 3, 4]", "[2, 3, 4]", "7", "false"})
}

func TestIfLetElse(t *testing.T) {
	got := runProgram(t, `
fn main() {
    let o = Some(5);
    if let Some(x) = o {
        println!("{}", x);
    } else {
        println!("none");
    }
    let n = None;
    if let Some(x) = n {
        println!("{}", x);
    } else {
        println!("none");
    }
}`, Options{})
	wantLines(t, got, []string{"5", "none"})
}

func TestWhileLetDrains(t *testing.T) {
	got := runProgram(t, `
fn main() {
    let v = vec![1, 2, 3];
    let mut total = 0;
    while let Some(x) = v.pop() {
        total += x;
    }
    println!("{}", total);
}`, Options{})
	wantLines(t, got, []string{"6"})
}

func TestClosureMapPipeline(t *testing.T) {
	got := runProgram(t, `
fn main() {
    let nums = vec![1, 2, 3];
    let doubled = nums.iter().map(|n| n * 2).collect();
    for d in doubled {
        println!("{}", d);
    }
    let add = |a, b| a + b;
    println!("{}", add(2, 3));
}`, Options{})
	wantLines(t, got, []string{"2", "4", "6", "5"})
}

func TestSameBlockRebinding(t *testing.T) {
	got := runProgram(t, `
fn main() {
    let x = 1;
    let x = x + 1;
    let x = x * 10;
    println!("{}", x);
}`, Options{})
	wantLines(t, got, []string{"20"})
}

func TestResultTryUnwrap(t *testing.T) {
	got := runProgram(t, `
fn half(n: i32) -> Result<i32, String> {
    if n % 2 == 0 {
        Ok(n / 2)
    } else {
        Err("odd".to_string())
    }
}
fn report(n: i32) -> i32 {
    let v = half(n)?;
    v
}
fn main() {
    println!("{}", report(10));
    match half(3) {
        Ok(v) => println!("{}", v),
        Err(e) => println!("err {}", e),
    }
}`, Options{})
	wantLines(t, got, []string{"5", "err odd"})
}

func TestImplStaticAndInstance(t *testing.T) {
	got := runProgram(t, `
struct Counter { n: i32 }
impl Counter {
    fn origin() -> Self {
        Self { n: 0 }
    }
    fn bump(&mut self) -> i32 {
        self.n += 1;
        self.n
    }
}
fn main() {
    let c = Counter::origin();
    c.bump();
    println!("{}", c.bump());
}`, Options{})
	wantLines(t, got, []string{"2"})
}

func TestProgramArgs(t *testing.T) {
	got := runProgram(t, `
fn main() {
    for a in env::args() {
        println!("{}", a);
    }
}`, Options{Args: []string{"x", "y"}})
	wantLines(t, got, []string{"x", "y"})
}

func TestPanicSurfacesAsCallError(t *testing.T) {
	js := compile(t, `
fn main() {
    panic!("bad state");
}`)
	_, err := Run(js, Options{})
	var ee *ExecError
	if !errors.As(err, &ee) || ee.Stage != "call" {
		t.Fatalf("want call ExecError, got %v", err)
	}
	if !strings.Contains(err.Error(), "panic: bad state") {
		t.Fatalf("panic message lost: %v", err)
	}
}
