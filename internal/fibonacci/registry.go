package fibonacci

// Note: CalculatorFactory interface is not mockable with mockgen because Register()
// uses the unexported coreCalculator type. Use DefaultFactory or manual mocks instead.

import (
	"fmt"
	"sort"
	"sync"
)

// CalculatorFactory creates and caches Calculator instances by key.
type CalculatorFactory interface {
	// Create creates a new Calculator instance by name.
	// Returns an error if the calculator type is not registered.
	Create(name string) (Calculator, error)

	// Get returns an existing Calculator instance by name.
	// Returns an error if the calculator type is not registered.
	Get(name string) (Calculator, error)

	// List returns a sorted list of registered calculator names.
	List() []string

	// Register adds a new calculator type to the factory.
	Register(name string, creator func() coreCalculator) error

	// GetAll returns a map of all registered calculators.
	GetAll() map[string]Calculator
}

// optionalCreators holds calculators contributed by build-tagged files.
var (
	optionalMu       sync.Mutex
	optionalCreators = map[string]func() coreCalculator{}
)

// registerOptional makes a calculator available to every new DefaultFactory.
// It is meant to be called from init functions.
func registerOptional(name string, creator func() coreCalculator) {
	optionalMu.Lock()
	defer optionalMu.Unlock()
	optionalCreators[name] = creator
}

// DefaultFactory is the default implementation of CalculatorFactory.
// It maintains a thread-safe registry of calculator creators and
// caches Calculator instances for reuse.
type DefaultFactory struct {
	mu          sync.RWMutex
	creators    map[string]func() coreCalculator
	calculators map[string]Calculator
}

// NewDefaultFactory creates a new DefaultFactory with every algorithm
// pre-registered:
//   - "naive":  NaiveRecursion (O(φ^n))
//   - "array":  ArrayIteration (O(n), O(n) space)
//   - "pair":   PairIteration (O(n), O(1) space)
//   - "matrix": MatrixExponentiation (O(log n))
//   - "binet":  BinetFormula (O(1), approximate)
//   - "rfd":    RecursiveDoubling (O(log n))
//   - "ifd":    IterativeDoubling (O(log n))
func NewDefaultFactory() *DefaultFactory {
	f := &DefaultFactory{
		creators:    make(map[string]func() coreCalculator),
		calculators: make(map[string]Calculator),
	}

	_ = f.Register("naive", func() coreCalculator { return NaiveRecursion{} })
	_ = f.Register("array", func() coreCalculator { return ArrayIteration{} })
	_ = f.Register("pair", func() coreCalculator { return PairIteration{} })
	_ = f.Register("matrix", func() coreCalculator { return MatrixExponentiation{} })
	_ = f.Register("binet", func() coreCalculator { return BinetFormula{} })
	_ = f.Register("rfd", func() coreCalculator { return RecursiveDoubling{} })
	_ = f.Register("ifd", func() coreCalculator { return IterativeDoubling{} })

	optionalMu.Lock()
	for name, creator := range optionalCreators {
		_ = f.Register(name, creator)
	}
	optionalMu.Unlock()

	return f
}

// Register adds a new calculator type to the factory.
// The creator function is called lazily when the calculator is first requested.
// If a calculator with the same name already exists, it will be replaced.
func (f *DefaultFactory) Register(name string, creator func() coreCalculator) error {
	if name == "" {
		return fmt.Errorf("calculator name cannot be empty")
	}
	if creator == nil {
		return fmt.Errorf("creator for %q cannot be nil", name)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.creators[name] = creator
	// Clear cached calculator if it exists, so it will be recreated with the new creator
	delete(f.calculators, name)
	return nil
}

// Create creates a new Calculator instance by name.
// Unlike Get(), this always creates a fresh instance without caching.
func (f *DefaultFactory) Create(name string) (Calculator, error) {
	f.mu.RLock()
	creator, ok := f.creators[name]
	f.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("unknown calculator: %s", name)
	}
	return NewCalculator(creator()), nil
}

// Get returns a Calculator instance by name.
// Instances are cached and reused for subsequent calls with the same name.
func (f *DefaultFactory) Get(name string) (Calculator, error) {
	f.mu.RLock()
	if calc, exists := f.calculators[name]; exists {
		f.mu.RUnlock()
		return calc, nil
	}
	f.mu.RUnlock()

	f.mu.Lock()
	defer f.mu.Unlock()

	// Double-check after acquiring write lock
	if calc, exists := f.calculators[name]; exists {
		return calc, nil
	}

	creator, ok := f.creators[name]
	if !ok {
		return nil, fmt.Errorf("unknown calculator: %s", name)
	}

	calc := NewCalculator(creator())
	f.calculators[name] = calc
	return calc, nil
}

// List returns a sorted list of all registered calculator names.
func (f *DefaultFactory) List() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	names := make([]string, 0, len(f.creators))
	for name := range f.creators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetAll returns a map of all registered calculators, creating the ones
// that have not been requested yet.
func (f *DefaultFactory) GetAll() map[string]Calculator {
	f.mu.Lock()
	defer f.mu.Unlock()

	for name, creator := range f.creators {
		if _, exists := f.calculators[name]; !exists {
			f.calculators[name] = NewCalculator(creator())
		}
	}

	result := make(map[string]Calculator, len(f.calculators))
	for name, calc := range f.calculators {
		result[name] = calc
	}
	return result
}
