// Package models defines the core domain models for Split Karo.
//
// # Models
//
//   - Profile: a registered person; the identity behind every trip membership
//   - Trip: a shared expense-tracking group with a leader and an invite code
//   - TripMember: a (trip, profile) pair with a role and a membership status
//   - Expense / ExpenseSplit: a payment made by one member, allocated across members
//   - Settlement: a direct payment between two members that reduces what is owed
//
// # Design Principles
//
// 1. **Money is decimal**: every amount is a decimal.Decimal with two fractional digits
// 2. **IDs, not pointers**: relationships are expressed with ID strings
// 3. **Immutable ledger**: expenses and settlements are never edited after creation
// 4. **Status is explicit**: membership transitions go through CanTransition
package models
