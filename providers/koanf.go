package providers

import (
	"errors"

	"github.com/knadh/koanf/v2"

	"github.com/0xalexb/lager"
)

// ErrNoRawBytes is returned by ReadBytes on the koanf adapter: lager
// providers produce structured data, not raw bytes.
var ErrNoRawBytes = errors.New("lager provider has no raw bytes, use Read")

// Koanf adapts one profile of a lager provider to koanf's provider
// contract, so a koanf instance can serve as the merge engine downstream:
//
//	k := koanf.New(".")
//	err := k.Load(providers.Koanf(providers.Defaults(cfg), lager.Default), nil)
//
// Reading a profile the provider does not populate yields an empty map,
// not an error: a provider legitimately may not emit every profile.
//
//nolint:ireturn // koanf.Provider is the contract koanf loads from.
func Koanf(p lager.Provider, profile lager.Profile) koanf.Provider {
	return &koanfProvider{provider: p, profile: profile}
}

type koanfProvider struct {
	provider lager.Provider
	profile  lager.Profile
}

// Read produces the selected profile's dictionary as a plain nested map.
func (k *koanfProvider) Read() (map[string]any, error) {
	data, err := k.provider.Data()
	if err != nil {
		return nil, err
	}

	dict, ok := data[k.profile]
	if !ok {
		return map[string]any{}, nil
	}

	out, ok := dict.Interface().(map[string]any)
	if !ok {
		return map[string]any{}, nil
	}

	return out, nil
}

// ReadBytes is unsupported.
func (k *koanfProvider) ReadBytes() ([]byte, error) {
	return nil, ErrNoRawBytes
}
