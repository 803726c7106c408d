package a11y

import (
	"testing"

	"github.com/accessibly/remedia/pkg/htmldoc"
)

func TestFixEmoji_Wrapped(t *testing.T) {
	doc := parseDoc(t, `<body><p>Great job &#127881; keep going</p></body>`)
	fixes := defaultEngine().fixEmoji(doc)
	if len(fixes) != 1 {
		t.Fatalf("expected 1 fix, got %d", len(fixes))
	}

	p := htmldoc.Elements(doc.Root, "p")[0]
	spans := htmldoc.Elements(p, "span")
	if len(spans) != 1 {
		t.Fatalf("expected 1 emoji span, got %d", len(spans))
	}
	span := spans[0]
	if htmldoc.GetAttr(span, "role") != "img" {
		t.Error("emoji span must carry role=img")
	}
	if got := htmldoc.GetAttr(span, "aria-label"); got != "Party Popper" {
		t.Errorf("expected aria-label %q, got %q", "Party Popper", got)
	}
	if got := htmldoc.Text(span); got != "\U0001F389" {
		t.Errorf("span must contain the emoji itself, got %q", got)
	}
	if got := htmldoc.Text(p); got != "Great job \U0001F389 keep going" {
		t.Errorf("surrounding text must be preserved, got %q", got)
	}
}

func TestFixEmoji_MultiplePerNode(t *testing.T) {
	doc := parseDoc(t, "<body><p>\U0001F389\U0001F680</p></body>")
	fixes := defaultEngine().fixEmoji(doc)
	if len(fixes) != 2 {
		t.Fatalf("expected 2 fixes, got %d", len(fixes))
	}
	p := htmldoc.Elements(doc.Root, "p")[0]
	if spans := htmldoc.Elements(p, "span"); len(spans) != 2 {
		t.Errorf("expected 2 emoji spans, got %d", len(spans))
	}
}

func TestFixEmoji_BMPTextUntouched(t *testing.T) {
	// Basic-plane symbols like the heavy black heart stay as plain text.
	doc := parseDoc(t, "<body><p>I ❤ Go</p></body>")
	if fixes := defaultEngine().fixEmoji(doc); len(fixes) != 0 {
		t.Errorf("expected no fixes for basic-plane text, got %d", len(fixes))
	}
}

func TestFixEmoji_AlreadyWrappedSkipped(t *testing.T) {
	doc := parseDoc(t, `<body><p><span role="img" aria-label="Party Popper">&#127881;</span></p></body>`)
	if fixes := defaultEngine().fixEmoji(doc); len(fixes) != 0 {
		t.Errorf("expected no fixes for wrapped emoji, got %d", len(fixes))
	}
}

func TestFixEmoji_ScriptSkipped(t *testing.T) {
	doc := parseDoc(t, "<body><script>var s = \"\U0001F389\";</script></body>")
	if fixes := defaultEngine().fixEmoji(doc); len(fixes) != 0 {
		t.Errorf("script content must never be wrapped, got %d fixes", len(fixes))
	}
}

func TestEmojiLabel(t *testing.T) {
	engine := defaultEngine()
	tests := map[rune]string{
		0x1F389: "Party Popper",
		0x1F680: "Rocket",
	}
	for r, expected := range tests {
		if got := engine.emojiLabel(r); got != expected {
			t.Errorf("emojiLabel(%U): expected %q, got %q", r, expected, got)
		}
	}
}

func TestInsideEmojiSpan(t *testing.T) {
	span := htmldoc.NewElement("span", "role", "img", "aria-label", "Rocket")
	text := htmldoc.NewText("\U0001F680")
	span.AppendChild(text)
	if !insideEmojiSpan(text) {
		t.Error("text inside a labeled img span must be recognized")
	}

	plain := htmldoc.NewElement("span")
	inner := htmldoc.NewText("x")
	plain.AppendChild(inner)
	if insideEmojiSpan(inner) {
		t.Error("plain span must not be recognized")
	}
}
