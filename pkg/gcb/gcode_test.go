package gcb

import (
	"errors"
	"strings"
	"testing"

	"github.com/gucio321/hilbert/pkg/workspace"
)

var testArea = workspace.Workspace{MinX: 80, MinY: 80, MaxX: 160, MaxY: 160, Name: "test"}

func square() []BetterPoint[AbsolutePos] {
	return []BetterPoint[AbsolutePos]{
		BetterPt[AbsolutePos](10, 10),
		BetterPt[AbsolutePos](10, 20),
		BetterPt[AbsolutePos](20, 20),
		BetterPt[AbsolutePos](20, 10),
	}
}

func TestDrawLines(t *testing.T) {
	b := NewGCodeBuilder(testArea)
	b.DrawLines(square()...)

	if err := b.Err(); err != nil {
		t.Fatalf("DrawLines: %v", err)
	}

	if got := b.Current(); !got.Near(BetterPt[AbsolutePos](20, 10)) {
		t.Errorf("Current() = %v, want {20 10}", got)
	}

	out := b.String()
	for _, want := range []string{
		"G0 X80 Y80 F5000.0",
		"G91 ; Relative positioning",
		"G0 X10 Y10 ; move to x 90.000000 y 90.000000",
		"G0 Z-20 ; start drawing",
		"G0 X0 Y10",
		"G0 Z20 ; stop drawing",
		"M84 X Y Z E",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("GCode does not contain %q:\n%s", want, out)
		}
	}
}

func TestComments(t *testing.T) {
	b := NewGCodeBuilder(testArea).Comments(false, false)
	b.DrawLine(BetterPt[AbsolutePos](0, 0), BetterPt[AbsolutePos](1, 1))

	body := strings.SplitN(b.String(), ";; BEGIN BUA\n", 2)[1]
	if strings.Contains(body, "start drawing") || strings.Contains(body, "BEGIN DrawLines") {
		t.Errorf("comments printed although disabled:\n%s", body)
	}

	b.Comments(true, true)
	if !strings.Contains(b.String(), "; start drawing\nG0 Z-20\n") {
		t.Errorf("comment is not above its command:\n%s", b.String())
	}
}

func TestOutOfWorkspace(t *testing.T) {
	tests := []struct {
		name string
		p    BetterPoint[AbsolutePos]
	}{
		{"negative x", BetterPt[AbsolutePos](-1, 0)},
		{"negative y", BetterPt[AbsolutePos](0, -1)},
		{"too far x", BetterPt[AbsolutePos](81, 0)},
		{"too far y", BetterPt[AbsolutePos](0, 80.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewGCodeBuilder(testArea)
			b.DrawLine(BetterPt[AbsolutePos](0, 0), tt.p)
			if err := b.Err(); !errors.Is(err, ErrOutOfWorkspace) {
				t.Errorf("Err() = %v, want %v", err, ErrOutOfWorkspace)
			}
		})
	}

	b := NewGCodeBuilder(testArea)
	b.DrawLine(BetterPt[AbsolutePos](0, 0), BetterPt[AbsolutePos](80, 80))
	if err := b.Err(); err != nil {
		t.Errorf("drawing to the far corner: %v", err)
	}
}

func TestDrawingState(t *testing.T) {
	if err := NewGCodeBuilder(testArea).Up().Err(); !errors.Is(err, ErrCantChangeDrawingState) {
		t.Errorf("Up without Down = %v, want %v", err, ErrCantChangeDrawingState)
	}

	if err := NewGCodeBuilder(testArea).Down().Down().Err(); !errors.Is(err, ErrCantChangeDrawingState) {
		t.Errorf("Down twice = %v, want %v", err, ErrCantChangeDrawingState)
	}

	if err := NewGCodeBuilder(testArea).EndContinousLine().Err(); !errors.Is(err, ErrCantChangeDrawingState) {
		t.Errorf("EndContinousLine without begin = %v, want %v", err, ErrCantChangeDrawingState)
	}

	if err := NewGCodeBuilder(testArea).DrawLines().Err(); !errors.Is(err, ErrEmptyPath) {
		t.Errorf("DrawLines() = %v, want %v", err, ErrEmptyPath)
	}
}

func TestContinousLine(t *testing.T) {
	b := NewGCodeBuilder(testArea)
	b.Move(BetterPt[AbsolutePos](10, 10)).BeginContinousLine()
	b.DrawLines(square()...)
	b.DrawLine(BetterPt[AbsolutePos](20, 10), BetterPt[AbsolutePos](30, 10))
	b.EndContinousLine()

	if err := b.Err(); err != nil {
		t.Fatalf("continous line: %v", err)
	}

	if n := strings.Count(b.String(), "start drawing"); n != 1 {
		t.Errorf("pen went down %d times, want 1", n)
	}

	b = NewGCodeBuilder(testArea)
	b.BeginContinousLine()
	b.DrawLines(square()...)
	if err := b.Err(); !errors.Is(err, ErrInvalidContinousLineContinuation) {
		t.Errorf("discontinuous line = %v, want %v", err, ErrInvalidContinousLineContinuation)
	}
}

func TestParseAndTrace(t *testing.T) {
	b := NewGCodeBuilder(testArea)
	b.DrawLines(square()...)
	b.DrawLine(BetterPt[AbsolutePos](0, 0), BetterPt[AbsolutePos](5, 0))
	if err := b.Err(); err != nil {
		t.Fatal(err)
	}

	parsed, err := NewGCodeBuilderFromGCode([]byte(b.String()))
	if err != nil {
		t.Fatalf("NewGCodeBuilderFromGCode: %v", err)
	}

	if got, want := countMoves(parsed.Commands()), countMoves(b.Commands()); got != want {
		t.Errorf("parsed %d moves, want %d", got, want)
	}

	strokes := Trace(parsed.Commands())
	if len(strokes) != 2 {
		t.Fatalf("traced %d strokes, want 2", len(strokes))
	}

	want := square()
	if len(strokes[0]) != len(want) {
		t.Fatalf("first stroke has %d points, want %d", len(strokes[0]), len(want))
	}

	for i, p := range strokes[0] {
		if !Redefine[AbsolutePos](p).Near(want[i]) {
			t.Errorf("stroke point %d = %v, want %v", i, p, want[i])
		}
	}

	if last := strokes[1][len(strokes[1])-1]; !Redefine[AbsolutePos](last).Near(BetterPt[AbsolutePos](5, 0)) {
		t.Errorf("second stroke ends at %v, want {5 0}", last)
	}
}

func TestParseInvalid(t *testing.T) {
	if _, err := NewGCodeBuilderFromGCode([]byte("G91\nG0 Xabc\n")); err == nil {
		t.Error("parsing a broken argument succeeded")
	}
}

func countMoves(cmds []Command) int {
	n := 0
	for _, c := range cmds {
		if c.Code == G0 {
			n++
		}
	}

	return n
}
