/*
Package plan implements the ledger of time locked savings plans.

Every user owns any number of plans, numbered from zero in creation order.
Deposited value is held by the custody account until it is withdrawn. A
withdrawal before the plan unlock time pays a penalty to the treasury, as
configured in the treasury extension.

The total balance of a user's plans never exceeds the configured cap.
*/
package plan
