/*
Package node assembles all vault extensions into a single application.

The user facing plan handlers run behind the signature check, the
operational gate and, for value moving calls, the reentry lock. The
administrative handlers run behind the signature check and the owner check.
Every call is a single unit of work.
*/
package node
