package main

import (
	"testing"

	"fitlife-blog/internal/config"
)

func TestCheckDriver(t *testing.T) {
	if err := checkDriver(config.DriverMemory); err == nil {
		t.Fatalf("expected memory driver to be rejected")
	}
	for _, driver := range []string{config.DriverPostgres, config.DriverMongo} {
		if err := checkDriver(driver); err != nil {
			t.Fatalf("%s: unexpected error %v", driver, err)
		}
	}
}
