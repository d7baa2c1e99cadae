// Package login implements the user-triggered session actions.
//
// Submit sends credentials to the server and reconciles the session store on
// success. A 401 raises one invalid-credentials notice; any other failure goes
// to the operator log. Logout terminates the session without inspecting the
// result and always reconciles afterwards.
package login
