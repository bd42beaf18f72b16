package model

import "encoding/json"

type BlockType string

// The block type enumeration is closed; rendering and validation dispatch on it.
const (
	BlockHeading        BlockType = "heading"
	BlockText           BlockType = "text"
	BlockImage          BlockType = "image"
	BlockVideo          BlockType = "video"
	BlockQuestionYesNo  BlockType = "question_yes_no"
	BlockQuestionChoice BlockType = "question_multiple_choice"
	BlockFileUpload     BlockType = "file_upload"
	BlockVideoPost      BlockType = "video_post"
)

var blockTypes = map[BlockType]bool{
	BlockHeading:        true,
	BlockText:           true,
	BlockImage:          true,
	BlockVideo:          true,
	BlockQuestionYesNo:  true,
	BlockQuestionChoice: true,
	BlockFileUpload:     true,
	BlockVideoPost:      true,
}

func ValidBlockType(t BlockType) bool {
	return blockTypes[t]
}

// Block is an ordered child of a Page. Options is a JSON array of strings,
// meaningful only for the multiple-choice variant.
// swagger:model Block
type Block struct {
	UUIDBase
	PageID   string    `gorm:"index;type:varchar(36);not null" json:"pageId"`
	Type     BlockType `gorm:"size:40;not null" json:"type"`
	Title    string    `gorm:"size:200" json:"title"`
	Content  string    `gorm:"type:text" json:"content"`
	Options  string    `gorm:"type:json" json:"-"`
	Position int       `gorm:"not null;default:0" json:"position"`
}

func (Block) TableName() string {
	return "blocks"
}

// OptionList decodes the stored options column. A missing or malformed
// column yields nil rather than an error; only choice blocks carry options.
func (b *Block) OptionList() []string {
	if b.Options == "" {
		return nil
	}
	var opts []string
	if err := json.Unmarshal([]byte(b.Options), &opts); err != nil {
		return nil
	}
	return opts
}

func (b *Block) SetOptions(opts []string) error {
	if opts == nil {
		b.Options = ""
		return nil
	}
	data, err := json.Marshal(opts)
	if err != nil {
		return err
	}
	b.Options = string(data)
	return nil
}
