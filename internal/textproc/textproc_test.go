package textproc

import "testing"

func TestProcessTextTrimsTrailingWhitespace(t *testing.T) {
	in := "fn add() {  \n    a + b   \n}\n"
	res := ProcessText(in, nil, true)
	want := "fn add() {\n    a + b\n}\n"
	if res.Text != want {
		t.Fatalf("got %q want %q", res.Text, want)
	}
}

func TestProcessTextDropsEmptyLines(t *testing.T) {
	in := "a\n\n\nb\n"
	res := ProcessText(in, nil, false)
	want := "a\nb\n"
	if res.Text != want {
		t.Fatalf("got %q want %q", res.Text, want)
	}
}

func TestProcessTextIsIdempotent(t *testing.T) {
	in := "  line one  \n\n  line two\t\n"
	first := ProcessText(in, []Range{{Start: 2, End: 10}}, false)
	second := ProcessText(first.Text, first.CommentRanges, false)
	if first.Text != second.Text {
		t.Fatalf("not idempotent: %q vs %q", first.Text, second.Text)
	}
}

func TestCalculateLineStarts(t *testing.T) {
	starts := CalculateLineStarts("abc\ndef\nghi")
	if len(starts) != 3 || starts[0] != 0 || starts[1] != 4 || starts[2] != 8 {
		t.Fatalf("unexpected line starts: %v", starts)
	}
}

func TestShouldSkipCharacterCommentRange(t *testing.T) {
	text := "a // hi\nb"
	ranges := []Range{{Start: 2, End: 7}}
	if !ShouldSkipCharacter(text, 3, ranges) {
		t.Fatal("expected position inside comment range to be skip-eligible")
	}
	if ShouldSkipCharacter(text, 0, ranges) {
		t.Fatal("position outside comment range should not be skip-eligible")
	}
}

func TestIsRestOfLineCommentOnly(t *testing.T) {
	text := "x = 1 // trailing\ny = 2"
	ranges := []Range{{Start: 6, End: 17}}
	if !IsRestOfLineCommentOnly(text, 6, ranges) {
		t.Fatal("expected rest of line to be comment-only")
	}
	if IsRestOfLineCommentOnly(text, 0, ranges) {
		t.Fatal("line with real code should not be comment-only")
	}
}
