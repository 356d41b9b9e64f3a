// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package wheel implements the wheel session lifecycle on top of kvstore.

# Sessions

A session is created empty and mutated through three actions:

	addFood  - upsert the caller's contribution, bumping its draw weight
	spin     - mark the wheel spinning and draw the outcome server-side
	result   - finalize the pending draw and append it to the history

The spin cycle is idle → spinning → idle. There is no timeout and no
cancellation; a wheel stays spinning until a result action lands.

# Global pointers

	latest_wheel_id  - id of the most recently created session
	refresh_trigger  - bumped on every create so polling clients reconnect

Both are overwritten unconditionally on Create. Old sessions stay
reachable by direct id forever.

# Concurrency

Mutate is a read-modify-write cycle guarded by the kv row version. A
concurrent writer causes a version conflict and the whole cycle is
retried (up to three attempts) before the conflict surfaces to the
caller. That closes the lost-update race without any in-process locking.

# Drawing

Draw picks uniformly over contributions weighted by their counts, using
cumulative sums and crypto/rand. The outcome is stored in the session as
pendingResult at spin time, so a later result action records the
server-chosen value rather than trusting the client.
*/
package wheel
