package rendering

import "github.com/jonathan/resume-builder/internal/types"

// View is the presentation tree produced by Render. It holds display strings
// only; nothing in it points back into the source document.
type View struct {
	Template types.Template `json:"template"`
	Title    string         `json:"title,omitempty"`
	Header   Header         `json:"header"`
	Blocks   []Block        `json:"blocks"`
}

// Header is the name and contact block at the top of the page.
type Header struct {
	Name     string    `json:"name,omitempty"`
	Tagline  string    `json:"tagline,omitempty"`
	Contacts []Contact `json:"contacts,omitempty"`
}

// Contact is one non-empty contact line.
type Contact struct {
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

// Block is one titled section of the page.
type Block struct {
	Section types.Section `json:"section"`
	Heading string        `json:"heading"`
	Text    string        `json:"text,omitempty"`
	Items   []Item        `json:"items,omitempty"`
	Badges  []string      `json:"badges,omitempty"`
}

// Item is one entry of a list block.
type Item struct {
	Heading    string `json:"heading,omitempty"`
	Subheading string `json:"subheading,omitempty"`
	Period     string `json:"period,omitempty"`
	Body       string `json:"body,omitempty"`
}

// Block returns the block for section, or nil if the view omits it.
func (v *View) Block(section types.Section) *Block {
	for i := range v.Blocks {
		if v.Blocks[i].Section == section {
			return &v.Blocks[i]
		}
	}
	return nil
}
