// Package order contains the Order aggregate and its lifecycle state machine.
//
// An order references a customer, snapshots the requested catalog items as
// line items, and carries a total price computed once at creation. The status
// state machine allows exactly one terminal transition out of Pending:
// Completed (via the fulfillment step) or Cancelled. An optimistic version
// counter guards concurrent lifecycle requests against double transitions.
package order
