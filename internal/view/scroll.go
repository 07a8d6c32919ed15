package view

import (
	"errors"
	"fmt"
)

// ErrUnknownBlock is raised when block or sub-block with provided id doesn't exist
var ErrUnknownBlock = errors.New("unknown scroll data block")

// SubBlock holds rendered html fragments
type SubBlock struct {
	Data []string `json:"data"`
}

// Block is titled section of view page
type Block struct {
	Title     string      `json:"title"`
	SubBlocks []*SubBlock `json:"subblocks"`
}

// ScrollData accumulates blocks of view page in order of addition
type ScrollData struct {
	Blocks []*Block `json:"dataBlocks"`
}

// NewScrollData builds empty ScrollData
func NewScrollData() *ScrollData {
	return &ScrollData{Blocks: make([]*Block, 0)}
}

// AddBlock appends new block and returns its id
func (d *ScrollData) AddBlock(title string) int {
	d.Blocks = append(d.Blocks, &Block{Title: title, SubBlocks: make([]*SubBlock, 0)})
	return len(d.Blocks) - 1
}

// AddSubBlock appends new sub-block to block and returns its id
func (d *ScrollData) AddSubBlock(blockID int) (int, error) {
	b, err := d.block(blockID)
	if err != nil {
		return 0, err
	}

	b.SubBlocks = append(b.SubBlocks, &SubBlock{Data: make([]string, 0)})
	return len(b.SubBlocks) - 1, nil
}

// AddSubBlockData appends html to sub-block
func (d *ScrollData) AddSubBlockData(blockID, subBlockID int, html string) error {
	b, err := d.block(blockID)
	if err != nil {
		return err
	}

	if subBlockID < 0 || subBlockID >= len(b.SubBlocks) {
		return fmt.Errorf("%w: sub-block %d of block %d", ErrUnknownBlock, subBlockID, blockID)
	}

	sb := b.SubBlocks[subBlockID]
	sb.Data = append(sb.Data, html)
	return nil
}

func (d *ScrollData) block(id int) (*Block, error) {
	if id < 0 || id >= len(d.Blocks) {
		return nil, fmt.Errorf("%w: block %d", ErrUnknownBlock, id)
	}
	return d.Blocks[id], nil
}
