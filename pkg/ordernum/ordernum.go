package ordernum

import (
	"fmt"

	"github.com/bwmarrin/snowflake"
)

var node *snowflake.Node

func init() {
	n, err := snowflake.NewNode(1)
	if err != nil {
		panic(fmt.Sprintf("ordernum: %v", err))
	}
	node = n
}

// Generate returns a new collision-resistant order number. Snowflake IDs
// are time-ordered, so order numbers sort roughly by creation time.
func Generate() string {
	return fmt.Sprintf("ORD-%s", node.Generate().String())
}
