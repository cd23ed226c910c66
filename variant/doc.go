// Package variant provides Slot, a single generational cell whose payload
// can change type.
//
// Slot applies the arena's handle protocol to exactly one element: a Handle is
// just a generation, there is no index, no free list and no way to empty the
// slot. Its only mutator, Set, replaces the whole payload and always bumps the
// generation, so a Handle taken while the slot held an Int can never observe
// the Text that replaced it. New and Set panic with ErrNilValue when given a
// nil Value, so a Slot always holds one of the Value cases.
//
//	s := variant.New(variant.Int(1))
//	h := s.Handle()
//	s.Set(variant.Text("one"))
//	_, ok := s.Get(h) // ok == false
package variant
