// Package jsonfile provides the file-backed implementation of
// driven.SnapshotStore.
//
// The whole billing state lives in one pretty-printed JSON document:
//
//	{
//	    "patients": [ { "patient_id": 1, "name": "...", "contact": "..." } ],
//	    "services": [ { "service_id": 1, "name": "...", "price": 100.00 } ],
//	    "bills": [ { "bill_id": 1, "patient_id": 1, "bill_date": "...",
//	                 "services_rendered": [ ... ], "total_amount": 100.00 } ]
//	}
//
// # Decoding
//
// Top-level arrays are optional. Every field inside a record is required;
// missing, null or mistyped fields surface as *domain.FormatError.
//
// # Writes
//
// Save writes to a uniquely named temporary file in the same directory,
// syncs it, and renames it over the target. A failed save leaves the
// previous file untouched.
package jsonfile
