package cmd

import (
	"context"
	"encoding/json"
	"fmt"
)

// StatsCmd builds a map and prints its size, backend and key range.
type StatsCmd struct {
	KeySource
	JSON bool `long:"json" description:"print result as JSON"`
}

func (c *StatsCmd) Execute(_ []string) error {
	m, err := c.build(context.Background())
	if err != nil {
		return err
	}
	defer m.Destroy()

	stats := m.Stats()
	if c.JSON {
		data, _ := json.MarshalIndent(stats, "", "  ")
		fmt.Println(string(data))
		return nil
	}
	fmt.Printf("Backend : %s\n", stats.Kind)
	fmt.Printf("Entries : %d\n", stats.Len)
	fmt.Printf("Ordered : %v\n", stats.Ordered)
	if stats.Min != nil {
		fmt.Printf("Min key : %d\n", *stats.Min)
		fmt.Printf("Max key : %d\n", *stats.Max)
	}
	return nil
}
