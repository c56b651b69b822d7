/*
Package host is an in-process plugin host.

A composition root registers plugins explicitly under an identifier; the host
calls OnAttach/OnDetach, keeps the catalog of every Invokable plugin and routes
Invoke calls by plugin ID and operation name. LifecycleHooks observe attach,
detach and every invocation, which is how metrics and adapters plug in.
*/
package host
