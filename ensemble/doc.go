// Package ensemble manages collections of vibration recordings and the
// fan-out of the receptive-field pipeline across them.
//
// An ensemble member is one recorded signal together with the operating
// condition it was captured at. Members live in a sqlite database owned
// by a [Store]; computed responses are written back to the same
// database. [Pool] dispatches a per-member function across a fixed
// number of workers, capturing individual failures and reporting them
// as one aggregate error after all members finish.
package ensemble
