package blocks

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/pagesmith/pagesmith/pkg/ptree"
)

// Dimension defaults applied when a resolved descriptor carries none.
const (
	defaultMediaWidth  = 800
	defaultMediaHeight = 600
)

// fallbackAltText terminates the alt-text precedence chain.
const fallbackAltText = "Image"

// Position places a media block within its row.
type Position string

const (
	PositionLeft   Position = "left"
	PositionCenter Position = "center"
	PositionRight  Position = "right"
)

// normalize maps unrecognized or absent positions to center.
func (p Position) normalize() Position {
	switch p {
	case PositionLeft, PositionCenter, PositionRight:
		return p
	default:
		return PositionCenter
	}
}

// MediaDescriptor is a hydrated media relationship: the storage
// collaborator has resolved the identifier into addressable data.
type MediaDescriptor struct {
	URL      string `json:"url"`
	Alt      string `json:"alt"`
	Filename string `json:"filename"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

// AltText resolves the descriptor's alternative text: explicit alt, then
// filename, then a literal fallback. The chain always terminates.
func (d MediaDescriptor) AltText() string {
	if d.Alt != "" {
		return d.Alt
	}
	if d.Filename != "" {
		return d.Filename
	}
	return fallbackAltText
}

// MediaRef is the two-case union for a media relationship field: either
// an unresolved bare identifier or a resolved descriptor. Hydration is
// the storage collaborator's job; this package only distinguishes the
// two states.
type MediaRef struct {
	id   string
	desc *MediaDescriptor
}

// UnresolvedRef builds the unresolved case. Exported for tests and for
// collaborators constructing blocks programmatically.
func UnresolvedRef(id string) MediaRef { return MediaRef{id: id} }

// ResolvedRef builds the resolved case.
func ResolvedRef(d MediaDescriptor) MediaRef { return MediaRef{desc: &d} }

// Descriptor returns the resolved descriptor, if this reference has one.
func (r MediaRef) Descriptor() (MediaDescriptor, bool) {
	if r.desc == nil {
		return MediaDescriptor{}, false
	}
	return *r.desc, true
}

// ID returns the bare identifier of an unresolved reference, or "" once
// resolved.
func (r MediaRef) ID() string { return r.id }

// UnmarshalJSON decodes a string as the unresolved case and an object as
// the resolved case. Null and other shapes decode as unresolved with an
// empty identifier — a defined, renders-to-nothing state, not an error.
func (r *MediaRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*r = MediaRef{}
		return nil
	}

	if data[0] == '"' {
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			*r = MediaRef{}
			return nil
		}
		*r = MediaRef{id: id}
		return nil
	}

	var d MediaDescriptor
	if err := json.Unmarshal(data, &d); err != nil {
		*r = MediaRef{}
		return nil
	}
	*r = MediaRef{desc: &d}
	return nil
}

// Media renders a resolved image with optional caption.
type Media struct {
	ID       string   `json:"id"`
	Ref      MediaRef `json:"mediaReference"`
	Caption  string   `json:"caption"`
	Position Position `json:"position"`
}

func (b Media) BlockKind() string { return KindMedia }

func (b Media) BlockID() string { return b.ID }

// Render produces the media figure. An unresolved reference, or a
// resolved one without a URL, renders nothing — hydration is an external
// responsibility and its absence is an expected state.
func (b Media) Render(key string) []*ptree.Node {
	desc, ok := b.Ref.Descriptor()
	if !ok || desc.URL == "" {
		return nil
	}

	align := "align-" + string(b.Position.normalize())

	width, height := desc.Width, desc.Height
	if width <= 0 {
		width = defaultMediaWidth
	}
	if height <= 0 {
		height = defaultMediaHeight
	}

	img := ptree.Element("img", ptree.ChildKey("image", 0)).
		SetAttr("src", desc.URL).
		SetAttr("alt", desc.AltText()).
		SetAttr("width", strconv.Itoa(width)).
		SetAttr("height", strconv.Itoa(height))

	fig := ptree.Element("figure", key).
		SetAttr("class", "media "+align).
		Append(img)

	if b.Caption != "" {
		// Caption alignment tracks the media container exactly.
		fig.Append(ptree.Element("figcaption", ptree.ChildKey("caption", 1)).
			SetAttr("class", "caption "+align).
			Append(ptree.Text(ptree.ChildKey("text", 0), b.Caption)))
	}
	return []*ptree.Node{fig}
}

func decodeMedia(data json.RawMessage) (Block, error) {
	var b Media
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, err
	}
	return b, nil
}
