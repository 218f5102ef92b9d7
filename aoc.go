// Package aoc holds the quick & dirty utilities shared by the Advent of
// Code 2024 solutions under cmd/.
package aoc

import (
	"bufio"
	"bytes"
	"errors"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"runtime"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/constraints"
)

var (
	puzzles      []string
	puzzleByName = map[string]func() any{} // func name -> func
	sampleInput  = map[string]string{}
	sampleWant   = map[string]string{}
)

var (
	cfg      = defaultConfig()
	curDay   int
	altInput []byte // non-nil to run a sample
	input    []byte // real input, read once
)

var getDay = regexp.MustCompile(`\d+`)

func Main() {
	c, err := LoadConfig()
	if err != nil {
		Die(-1, "%v", err)
	}
	cfg = c

	flagPart := flag.String("part", "", "func name to run, e.g. d6p2; empty means every registered part. A bare number picks that part of the current day.")
	flag.StringVar(&cfg.Input, "input", cfg.Input, "path of the puzzle input")
	flagSkipSample := flag.Bool("skip-sample", false, "don't check the sample before running the real input")
	flagDebug := flag.Bool("debug", false, "log at debug level")
	flag.Parse()
	if *flagDebug {
		cfg.LogLevel = "debug"
	}
	initLogger(cfg.LogLevel)

	if len(puzzles) == 0 {
		Die(-1, "no puzzle funcs registered")
	}
	names := puzzles
	if name := *flagPart; name != "" {
		if unicode.IsDigit(rune(name[0])) {
			name = strings.TrimRightFunc(puzzles[0], unicode.IsDigit) + name
		}
		if _, ok := puzzleByName[name]; !ok {
			Die(-1, "puzzle func %v not registered", name)
		}
		names = []string{name}
	}

	for _, name := range names {
		run(name, !*flagSkipSample)
	}
}

func run(name string, checkSample bool) {
	f := puzzleByName[name]
	m := getDay.FindStringSubmatch(name)
	if m == nil {
		Die(-1, "no digits in func name %q from which to extract day number", name)
	}
	curDay = Int(m[0])

	if want, ok := sampleWant[name]; ok && checkSample {
		got := fmt.Sprint(Solve(f, []byte(sampleInput[name])))
		if got != want {
			log.Error().Str("puzzle", name).Str("got", got).Str("want", want).Msg("sample mismatch")
			os.Exit(1)
		}
		log.Info().Str("puzzle", name).Msg("OK sample result")
	} else if checkSample {
		log.Warn().Str("puzzle", name).Msg("no sample")
	}

	t0 := time.Now()
	v := f()
	log.Debug().Str("puzzle", name).Dur("took", time.Since(t0)).Msg("solved")
	fmt.Println(v)
}

// Solve runs f against in instead of the real puzzle input.
func Solve(f func() any, in []byte) any {
	prev := altInput
	altInput = in
	if altInput == nil {
		altInput = []byte{}
	}
	defer func() { altInput = prev }()
	return f()
}

// Sample reports whether the running puzzle func is working on a sample.
func Sample() bool {
	return altInput != nil
}

func ExtractSamples(src []byte) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "main.go", src, parser.ParseComments)
	if err != nil {
		Die(-1, "parsing source to extract samples: %v", err)
	}
	var lastInput string
	wantRx := regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		funcName := fd.Name.Name
		for _, c := range fd.Doc.List {
			text := strings.TrimPrefix(c.Text, "//")
			if v, ok := strings.CutPrefix(text, "/*"); ok {
				text = strings.TrimSuffix(v, "*/")
			}
			if m := wantRx.FindStringSubmatch(text); m != nil {
				sampleWant[funcName] = strings.TrimSpace(m[1])
				in := Or(m[2], lastInput)
				sampleInput[funcName] = in
				lastInput = in
			}
		}
	}
}

// SampleFor returns the sample recorded by ExtractSamples for the
// puzzle func named name.
func SampleFor(name string) (in, want string, ok bool) {
	want, ok = sampleWant[name]
	return sampleInput[name], want, ok
}

// FuncName returns the name a puzzle func is registered under.
func FuncName(f func() any) string {
	rv := reflect.ValueOf(f)
	rf := runtime.FuncForPC(rv.Pointer())
	if rf == nil {
		panic("no func found")
	}
	// Test binaries name funcs by import path, e.g.
	// github.com/nrhodes/aoc/cmd/day16.d16p1.
	name := rf.Name()
	return name[strings.LastIndexByte(name, '.')+1:]
}

func Add(puzFuncs ...func() any) {
	for _, f := range puzFuncs {
		name := FuncName(f)
		puzzles = append(puzzles, name)
		puzzleByName[name] = f
	}
}

type Pt2[T constraints.Signed] struct {
	X, Y T
}

type Pt = Pt2[int]

func (p Pt2[T]) ForNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	for y := T(-1); y <= 1; y++ {
		for x := T(-1); x <= 1; x++ {
			if x == 0 && y == 0 {
				continue
			}
			if !f(Pt2[T]{p.X + x, p.Y + y}) {
				return
			}
		}
	}
}

func AbsInt[T constraints.Signed](x, y T) T {
	v := x - y
	if v < 0 {
		v = -v
	}
	return v
}

func (p Pt2[T]) Add(q Pt2[T]) Pt2[T] { return Pt2[T]{p.X + q.X, p.Y + q.Y} }
func (p Pt2[T]) Sub(q Pt2[T]) Pt2[T] { return Pt2[T]{p.X - q.X, p.Y - q.Y} }
func (p Pt2[T]) Mul(k T) Pt2[T]      { return Pt2[T]{p.X * k, p.Y * k} }

// Mod wraps p into the rectangle [0,size.X) x [0,size.Y).
func (p Pt2[T]) Mod(size Pt2[T]) Pt2[T] {
	p.X %= size.X
	p.Y %= size.Y
	if p.X < 0 {
		p.X += size.X
	}
	if p.Y < 0 {
		p.Y += size.Y
	}
	return p
}

func (p Pt2[T]) North() Pt2[T] { return Pt2[T]{p.X, p.Y - 1} }
func (p Pt2[T]) South() Pt2[T] { return Pt2[T]{p.X, p.Y + 1} }
func (p Pt2[T]) West() Pt2[T]  { return Pt2[T]{p.X - 1, p.Y} }
func (p Pt2[T]) East() Pt2[T]  { return Pt2[T]{p.X + 1, p.Y} }

func sliceOf[T any](v ...T) []T { return v }

// NorthClockwise is indexed by Direction.
var NorthClockwise = sliceOf(
	Pt2[int].North,
	Pt2[int].East,
	Pt2[int].South,
	Pt2[int].West,
)

// Move returns the point one step from p in direction d.
func (p Pt2[T]) Move(d Direction) Pt2[T] {
	switch d {
	case Up:
		return p.North()
	case Right:
		return p.East()
	case Down:
		return p.South()
	case Left:
		return p.West()
	}
	panic(fmt.Sprintf("bogus direction %d", d))
}

func Input() []byte {
	if altInput != nil {
		return altInput
	}
	if input != nil {
		return input
	}
	f, err := os.ReadFile(cfg.Input)
	switch {
	case err == nil:
		input = f
		return input
	case !errors.Is(err, fs.ErrNotExist):
		Die(-2, "cannot read input file %s: %v", cfg.Input, err)
	}
	session, err := os.ReadFile(cfg.SessionFile)
	if err != nil || curDay == 0 {
		Die(-1, "input file not found: %s", cfg.Input)
	}
	url := fmt.Sprintf("%s/%d/day/%d/input", strings.TrimRight(cfg.BaseURL, "/"), cfg.Year, curDay)
	log.Info().Str("url", url).Msg("fetching input")
	req := MustGet(http.NewRequest("GET", url, nil))
	req.AddCookie(&http.Cookie{Name: "session", Value: strings.TrimSpace(string(session))})
	res := MustGet(http.DefaultClient.Do(req))
	defer res.Body.Close()
	if res.StatusCode != 200 {
		Die(-1, "bad status fetching %s: %v", url, res.Status)
	}
	f = MustGet(io.ReadAll(res.Body))
	if dir := filepath.Dir(cfg.Input); dir != "." {
		MustDo(os.MkdirAll(dir, 0700))
	}
	MustDo(os.WriteFile(cfg.Input, f, 0644))
	input = f
	return input
}

func Scanner() *bufio.Scanner {
	s := bufio.NewScanner(bytes.NewReader(Input()))
	s.Buffer(nil, 1<<20)
	return s
}

func Int(s string) int {
	return MustGet(strconv.Atoi(s))
}

var intRx = regexp.MustCompile(`-?\d+`)

// Ints returns every integer in s, in order. A '-' directly before a
// digit is taken as a sign.
func Ints(s string) []int {
	var nums []int
	for _, m := range intRx.FindAllString(s, -1) {
		nums = append(nums, Int(m))
	}
	return nums
}

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// ForLines calls onLine for each line of input.
func ForLines(onLine func(line string)) {
	ForLinesY(func(_ int, line string) { onLine(line) })
}

// ForLinesY calls onLine for each line of input.
// The y value is the row number, starting with 0.
func ForLinesY(onLine func(y int, line string)) {
	s := Scanner()
	y := -1
	for s.Scan() {
		y++
		onLine(y, s.Text())
	}
	if err := s.Err(); err != nil {
		Die(-2, "reading input: %v", err)
	}
}

func DigVal(b byte) int {
	if b >= '0' && b <= '9' {
		return int(b - '0')
	}
	panic(fmt.Sprintf("bogus digit %q", string(b)))
}

// Or returns the first non-zero element of list, or else returns the zero T.
//
// This is the proposal from
// https://github.com/golang/go/issues/60204#issuecomment-1581245334.
func Or[T comparable](list ...T) T {
	var zero T
	for _, v := range list {
		if v != zero {
			return v
		}
	}
	return zero
}

type Grid map[Pt]rune

func ReadGrid() Grid {
	return GridFromString(string(Input()))
}

func GridFromString(s string) Grid {
	g := Grid{}
	for y, line := range strings.Split(s, "\n") {
		for x, r := range line {
			if unicode.IsSpace(r) {
				continue
			}
			g[Pt{x, y}] = r
		}
	}
	return g
}

func (g Grid) Bounds() (minX, minY, maxX, maxY int) {
	n := 0
	for p := range g {
		if n == 0 {
			minX = p.X
			maxX = p.X
			minY = p.Y
			maxY = p.Y
		}
		n++
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return
}
