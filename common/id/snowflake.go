package id

import (
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	node *snowflake.Node
	once sync.Once
)

var ErrInvalid = errors.New("invalid id")

// Init sets up the process-wide snowflake node. Server and worker must use
// different node IDs.
func Init(nodeID int64) error {
	var err error
	once.Do(func() {
		node, err = snowflake.NewNode(nodeID)
	})
	return err
}

// New returns a time-ordered int64 id.
func New() int64 {
	return node.Generate().Int64()
}

// Parse reads an id as it appears in URLs and JSON bodies (decimal string).
func Parse(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalid, s)
	}
	return v, nil
}

// Format is the inverse of Parse.
func Format(v int64) string {
	return snowflake.ID(v).String()
}
