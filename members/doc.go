// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package members checks member login details against the external member
record service.

	client := members.NewClient("https://records.example/sawb/member/", 5*time.Second, nil)
	err := client.Verify(ctx, members.Attempt{Name: "Ada", Number: "1234"})

The record service answers GET <base><number> with

	{"member": {"name": "Ada", "number": "1234", "age": 36, "region": "North"}}

where age and region are optional. Lookups are bounded by the client
timeout. An unreachable service, a non-200 answer or a body that does not
decode all yield ErrNotFound, so login reports "details not found" rather
than failing the request.
*/
package members
