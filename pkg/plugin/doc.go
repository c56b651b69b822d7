/*
Package plugin defines the contract between a plugin and the host that loads it.

A plugin is any value that satisfies the capability interfaces below. There is no
base type to embed and no global registry: a composition root creates the plugin
and hands it to a host explicitly.

# Key Interfaces

  - Describable: exposes the plugin Metadata (name, version, description, author).
  - Attachable: receives OnAttach/OnDetach lifecycle callbacks from the host.
  - Invokable: publishes a catalog of named Operations the host can route calls to.
*/
package plugin
