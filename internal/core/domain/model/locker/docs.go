// Package locker provides the domain entity for items held in a locker.
//
// A locker is a physical or virtual holding bin identified by a short
// alphanumeric code. Items accumulate in a locker as they are received at the
// warehouse and remain pending until a consolidation consumes them. An item
// belongs to at most one active consolidation; consumption removes it from the
// registry exactly once, at consolidation time.
package locker
