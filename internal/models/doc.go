// Package models defines the stored records of the gift drawing service.
//
// # Records
//
//   - Household: a grouping of participants who never draw each other
//   - Participant: a person on the roster, with household and birth date
//   - Pairing: one giver/receiver assignment for a year
//   - Drawing: the finalized pairings of one year
//   - User: an account allowed to administer drawings
//
// Relationships use ID strings rather than pointers, so records can be loaded
// and stored independently. Pairing is the exception: a finalized pairing is
// always read back joined to its two participants.
package models
