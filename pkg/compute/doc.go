// Package compute provides HTTP-backed managers for a compute API's servers
// and flavors.
//
// Every entity is returned as a *resource.Resource whose manager is the
// collection's *Manager, so reading an attribute the list view did not carry
// lazily fetches the full entity, and identifiers are recorded in the
// configured completion cache as resources are built.
//
// Basic usage:
//
//	client, err := compute.New(&compute.Config{
//		Endpoint:    "https://compute.example.com/v2",
//		AccessToken: token,
//	})
//	if err != nil {
//		return err
//	}
//
//	server, err := client.Servers().Get(ctx, "3fa85f64-5717-4562-b3fc-2c963f66afa6")
//	if err != nil {
//		return err
//	}
//
//	status, err := server.GetAttribute(ctx, "status")
package compute
