/*
Package treasury holds the economic parameters of the vault: the per user
balance cap, the early withdrawal penalty rate and the address that collects
penalties.

All parameters are changed by the owner only. Penalty computes the amount
withheld from an early withdrawal.
*/
package treasury
