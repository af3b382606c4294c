// Package assetreturns forecasts the return of UK investments: let and
// live-in properties financed by a mortgage, leaseholds, and stock holdings.
//
// An Asset knows its buy price, its expenses, and the profits it makes while
// held. NominalReturn, PercentageReturn and AnnualPercentageReturn compare
// what selling it after a number of years returns on the initial equity, and
// Project computes them for every year of a horizon.
//
// Properties pay stamp duty when bought and capital gains tax when sold (see
// StampDuty and CapitalGains). Their mortgage, from package mortgage, is sized
// by PropertyForecast, LeaseholdForecast or LiveInLandlordForecast.
package assetreturns
