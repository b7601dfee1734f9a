package hunt

import "math/rand"

// Celebration is what appears over a found target. Glyph is the stand-in
// for Emoji that a bitmap font can draw.
type Celebration struct {
	Emoji   string
	Glyph   string
	Message string
}

type emojiGlyph struct {
	emoji, glyph string
}

var emojis = []emojiGlyph{
	{"🎉", `\o/`},
	{"🎈", `o~`},
	{"🎊", `*.*.*`},
	{"⭐", `*`},
	{"🌟", `<*>`},
	{"💫", `@*`},
	{"🏆", `\_/`},
	{"🥳", `:D`},
	{"🪄", `--*`},
	{"✨", `+*+`},
}

var messages = []string{
	"Amazing find!",
	"You're a natural!",
	"Outstanding work!",
	"Spectacular!",
	"You found it!",
	"Brilliant work!",
	"What a discovery!",
	"Great job!",
}

// pickCelebration draws the emoji and the message independently.
func pickCelebration(r *rand.Rand) Celebration {
	e := emojis[r.Intn(len(emojis))]
	return Celebration{
		Emoji:   e.emoji,
		Glyph:   e.glyph,
		Message: messages[r.Intn(len(messages))],
	}
}
