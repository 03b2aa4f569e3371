package mapaction

import (
	"context"
	"reflect"

	"github.com/viant/fluxor/model/types"
	"github.com/viant/intmap/internal/conv"
	"github.com/viant/intmap/intmap"
	"github.com/viant/intmap/intmap/registry"
)

// Name is the action service name.
const Name = "intmap"

// Service exposes map operations as Fluxor actions.
type Service struct {
	registry  *registry.Registry
	sigs      types.Signatures
	executors map[string]types.Executable
}

type op struct {
	name string
	desc string
	in   reflect.Type
	out  reflect.Type
	call func(ctx context.Context, in interface{}) (interface{}, error)
}

// New builds the action service on top of reg.
func New(reg *registry.Registry) *Service {
	s := &Service{
		registry:  reg,
		executors: map[string]types.Executable{},
	}
	for _, o := range s.ops() {
		s.register(o)
	}
	return s
}

func (s *Service) ops() []op {
	return []op{
		{
			name: "create",
			desc: "Create a map from keys and return its handle",
			in:   reflect.TypeOf(&CreateInput{}),
			out:  reflect.TypeOf(&CreateOutput{}),
			call: func(_ context.Context, in interface{}) (interface{}, error) {
				return s.create(in.(*CreateInput))
			},
		},
		{
			name: "lookup",
			desc: "Look up keys in a map discarding the results",
			in:   reflect.TypeOf(&KeysInput{}),
			out:  reflect.TypeOf(&LookupOutput{}),
			call: func(_ context.Context, in interface{}) (interface{}, error) {
				input := in.(*KeysInput)
				if err := s.registry.Lookup(registry.Handle(input.Handle), input.Keys); err != nil {
					return nil, err
				}
				return &LookupOutput{Count: len(input.Keys)}, nil
			},
		},
		{
			name: "probe",
			desc: "Count how many keys are present in a map",
			in:   reflect.TypeOf(&KeysInput{}),
			out:  reflect.TypeOf(&ProbeOutput{}),
			call: func(_ context.Context, in interface{}) (interface{}, error) {
				input := in.(*KeysInput)
				hits, err := s.registry.Probe(registry.Handle(input.Handle), input.Keys)
				if err != nil {
					return nil, err
				}
				return &ProbeOutput{Hits: hits, Misses: len(input.Keys) - hits}, nil
			},
		},
		{
			name: "get",
			desc: "Return the value stored for a key",
			in:   reflect.TypeOf(&GetInput{}),
			out:  reflect.TypeOf(&GetOutput{}),
			call: func(_ context.Context, in interface{}) (interface{}, error) {
				input := in.(*GetInput)
				m, err := s.registry.Map(registry.Handle(input.Handle))
				if err != nil {
					return nil, err
				}
				value, ok := m.Get(input.Key)
				return &GetOutput{Found: ok, Value: value}, nil
			},
		},
		{
			name: "stats",
			desc: "Describe size, backend and key range of a map",
			in:   reflect.TypeOf(&HandleInput{}),
			out:  reflect.TypeOf(&intmap.Stats{}),
			call: func(_ context.Context, in interface{}) (interface{}, error) {
				m, err := s.registry.Map(registry.Handle(in.(*HandleInput).Handle))
				if err != nil {
					return nil, err
				}
				return m.Stats(), nil
			},
		},
		{
			name: "destroy",
			desc: "Destroy a map, its handle becomes invalid",
			in:   reflect.TypeOf(&HandleInput{}),
			out:  reflect.TypeOf(&DestroyOutput{}),
			call: func(_ context.Context, in interface{}) (interface{}, error) {
				if err := s.registry.Destroy(registry.Handle(in.(*HandleInput).Handle)); err != nil {
					return nil, err
				}
				return &DestroyOutput{Destroyed: true}, nil
			},
		},
		{
			name: "list",
			desc: "List live maps",
			in:   reflect.TypeOf(&ListInput{}),
			out:  reflect.TypeOf(&ListOutput{}),
			call: func(_ context.Context, _ interface{}) (interface{}, error) {
				return s.list(), nil
			},
		},
	}
}

func (s *Service) create(input *CreateInput) (*CreateOutput, error) {
	var opts []intmap.Option
	if input.Backend != "" {
		kind, err := intmap.ParseKind(input.Backend)
		if err != nil {
			return nil, err
		}
		opts = append(opts, intmap.WithKind(kind))
	}
	handle := s.registry.Create(input.Keys, opts...)
	m, err := s.registry.Map(handle)
	if err != nil {
		return nil, err
	}
	return &CreateOutput{Handle: uint64(handle), Kind: m.Kind(), Len: m.Len()}, nil
}

func (s *Service) list() *ListOutput {
	ret := &ListOutput{Maps: []*MapInfo{}}
	for _, handle := range s.registry.Handles() {
		m, err := s.registry.Map(handle)
		if err != nil {
			continue // destroyed meanwhile
		}
		ret.Maps = append(ret.Maps, &MapInfo{Handle: uint64(handle), Stats: m.Stats()})
	}
	return ret
}

func (s *Service) register(o op) {
	exec := func(ctx context.Context, input, output interface{}) error {
		// Accept either typed *struct or generic map.
		param := reflect.New(o.in.Elem()).Interface()
		if input != nil {
			if reflect.TypeOf(input) == o.in {
				param = input
			} else if err := conv.Convert(input, param); err != nil {
				return err
			}
		}
		res, err := o.call(ctx, param)
		if err != nil {
			return err
		}
		if output != nil {
			switch outPtr := output.(type) {
			case *interface{}:
				*outPtr = res
			default:
				return conv.Convert(res, outPtr)
			}
		}
		return nil
	}
	s.executors[o.name] = exec
	s.sigs = append(s.sigs, types.Signature{
		Name:        o.name,
		Description: o.desc,
		Input:       o.in,
		Output:      o.out,
	})
}

// ------------------------------------------------------------------
// types.Service implementation
// ------------------------------------------------------------------

func (s *Service) Name() string { return Name }

func (s *Service) Methods() types.Signatures { return s.sigs }

func (s *Service) Method(name string) (types.Executable, error) {
	if exec, ok := s.executors[name]; ok {
		return exec, nil
	}
	return nil, types.NewMethodNotFoundError(name)
}
