// Package services implements the driving ports.
//
//   - BillingService: the in-memory billing store (patients, catalog,
//     bills, ID counters) with whole-snapshot load and save
//   - SettingsService: application settings backed by a ConfigStore
//
// # Import Rules
//
//   - Can Import: domain, ports/driven, ports/driving, logger
//   - Cannot Import: Any adapter package (tests may use in-memory adapters)
package services
