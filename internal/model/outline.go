package model

// Expanded course tree returned by the outline read path and cached per
// course in redis.

// swagger:model CourseOutline
type CourseOutline struct {
	Course   Course           `json:"course"`
	Sections []SectionOutline `json:"sections"`
}

type SectionOutline struct {
	Section Section       `json:"section"`
	Pages   []PageOutline `json:"pages"`
}

type PageOutline struct {
	Page   Page        `json:"page"`
	Blocks []BlockView `json:"blocks"`
}

// BlockView is the API shape of a Block with its options decoded.
type BlockView struct {
	Block
	Options []string `json:"options,omitempty"`
}

func NewBlockView(b Block) BlockView {
	return BlockView{Block: b, Options: b.OptionList()}
}
