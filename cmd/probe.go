package cmd

import (
	"context"
	"encoding/json"
	"fmt"
)

// ProbeCmd builds a map and reports which probe keys are present.
type ProbeCmd struct {
	KeySource
	Probe string `short:"p" long:"probe" description:"comma separated keys to look up" required:"yes"`
	JSON  bool   `long:"json" description:"print result as JSON"`
}

type probeResult struct {
	Key   int  `json:"key"`
	Found bool `json:"found"`
	Value *int `json:"value,omitempty"`
}

type probeReport struct {
	Len     int            `json:"len"`
	Hits    int            `json:"hits"`
	Misses  int            `json:"misses"`
	Results []*probeResult `json:"results"`
}

func (c *ProbeCmd) Execute(_ []string) error {
	probe, err := parseInline(c.Probe)
	if err != nil {
		return err
	}
	m, err := c.build(context.Background())
	if err != nil {
		return err
	}
	defer m.Destroy()

	report := &probeReport{Len: m.Len(), Hits: m.Probe(probe)}
	report.Misses = len(probe) - report.Hits
	for _, key := range probe {
		result := &probeResult{Key: key}
		if value, ok := m.Get(key); ok {
			result.Found, result.Value = true, &value
		}
		report.Results = append(report.Results, result)
	}

	if c.JSON {
		data, _ := json.MarshalIndent(report, "", "  ")
		fmt.Println(string(data))
		return nil
	}
	for _, r := range report.Results {
		if r.Found {
			fmt.Printf("%d\tpresent\t%d\n", r.Key, *r.Value)
		} else {
			fmt.Printf("%d\tabsent\n", r.Key)
		}
	}
	fmt.Printf("entries: %d, hits: %d, misses: %d\n", report.Len, report.Hits, report.Misses)
	return nil
}
