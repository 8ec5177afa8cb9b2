// Package services implements the core analysis logic.
//
// Services implement the driving ports and orchestrate the driven ports.
// They contain no infrastructure code: fetching, decoding and dataframe
// work are delegated to adapters injected at construction.
package services
