package cmd

import (
	"fmt"
	"sort"

	"github.com/viant/fluxor/model/types"
)

// ListActionsCmd prints action services with their methods; remote proxies
// registered via config show up next to the local intmap service.
type ListActionsCmd struct {
	Service string `short:"s" long:"service" description:"only list methods of this service"`
}

func (c *ListActionsCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}

	services := svc.Services()
	sort.Slice(services, func(i, j int) bool { return services[i].Name() < services[j].Name() })
	listed := 0
	for _, s := range services {
		if c.Service != "" && s.Name() != c.Service {
			continue
		}
		listed++
		fmt.Println(s.Name())
		for _, sig := range sortedSignatures(s.Methods()) {
			fmt.Printf("  %-10s %s\n", sig.Name, sig.Description)
		}
	}
	if listed == 0 && c.Service != "" {
		return fmt.Errorf("service %q not found", c.Service)
	}
	return nil
}

func sortedSignatures(methods types.Signatures) types.Signatures {
	ret := make(types.Signatures, len(methods))
	copy(ret, methods)
	sort.Slice(ret, func(i, j int) bool { return ret[i].Name < ret[j].Name })
	return ret
}
