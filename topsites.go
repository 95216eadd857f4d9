// Package topsites retrieves ranked site names from a paginated listing.
// It fetches a listing page, extracts the labeled entries, follows the
// page's "next" link and repeats until a quota is met or the listing runs out.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, htmlquery/, rod/).
package topsites
