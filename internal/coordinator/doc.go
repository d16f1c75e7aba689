// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package coordinator implements the entity-agnostic push and pull loops
// shared by every synchronizable unit.
//
// [Push] sends PENDING records in bounded batches. Records the server
// rejects become INVALID; everything else still PENDING at the end of the
// pass becomes DONE in one bulk transition.
//
// [Pull] walks the server change feed page by page starting at the stored
// cursor. Each page is merged before the cursor moves, so a crash between
// the two is safe to retry. A page shorter than the batch size ends the
// loop.
//
// Both loops observe ctx only between batches. A network call that has
// already started runs to completion on a detached context.
package coordinator
