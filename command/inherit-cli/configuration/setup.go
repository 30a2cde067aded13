// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - the inherit-cli identity file
package configuration

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/eoscanada/eos-go"

	"github.com/bitmark-inc/inheritd/account"
	"github.com/bitmark-inc/inheritd/fault"
)

// Configuration - configuration file data format
type Configuration struct {
	DefaultIdentity string              `json:"default_identity"`
	Chain           string              `json:"chain"`
	Connections     []string            `json:"connections"`
	Identities      map[string]Identity `json:"identities"`
}

// Identity - mix of plain and encrypted data
type Identity struct {
	Description string          `json:"description"`
	Account     eos.AccountName `json:"account"`
	PublicKey   string          `json:"public_key"`
	Data        string          `json:"data"`
	Salt        string          `json:"salt"`
}

// InfoIdentity - public view of an identity
type InfoIdentity struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Account     eos.AccountName `json:"account"`
	PublicKey   string          `json:"public_key"`
	CanSign     bool            `json:"can_sign"`
}

// Load - read the configuration
func Load(filename string) (*Configuration, error) {

	filename, err := filepath.Abs(filepath.Clean(filename))
	if nil != err {
		return nil, err
	}

	f, err := os.Open(filename)
	if nil != err {
		return nil, err
	}
	defer f.Close()

	options := &Configuration{}
	err = json.NewDecoder(f).Decode(options)
	if nil != err {
		return nil, err
	}
	if nil == options.Identities {
		options.Identities = make(map[string]Identity)
	}
	return options, nil
}

// Identity - find identity for a given name
func (config *Configuration) Identity(name string) (*Identity, error) {
	id, ok := config.Identities[name]
	if !ok {
		return nil, fault.ErrIdentityNameNotFound
	}
	return &id, nil
}

// Account - the account name of an identity or a plain account name
func (config *Configuration) Account(name string) (eos.AccountName, error) {
	if id, ok := config.Identities[name]; ok {
		return id.Account, nil
	}
	return account.ParseName(name)
}

// Private - decrypt the signing key of an identity
func (config *Configuration) Private(password string, name string) (account.PrivateKey, error) {
	id, err := config.Identity(name)
	if nil != err {
		return nil, err
	}
	return decryptIdentity(password, id)
}

// AddIdentity - store an encrypted identity
func (config *Configuration) AddIdentity(name string, description string, accountName eos.AccountName, privateKey account.PrivateKey, password string) error {

	if _, ok := config.Identities[name]; ok {
		return fault.ErrIdentityNameAlreadyExists
	}

	salt, secretKey, err := hashPassword(password)
	if nil != err {
		return err
	}

	encrypted, err := encryptData(privateKey.String(), secretKey)
	if nil != err {
		return err
	}

	config.Identities[name] = Identity{
		Description: description,
		Account:     accountName,
		PublicKey:   privateKey.Public().String(),
		Data:        encrypted,
		Salt:        salt.String(),
	}
	return nil
}

// AddReceiveOnlyIdentity - store an account that cannot sign
func (config *Configuration) AddReceiveOnlyIdentity(name string, description string, accountName eos.AccountName) error {

	if _, ok := config.Identities[name]; ok {
		return fault.ErrIdentityNameAlreadyExists
	}

	config.Identities[name] = Identity{
		Description: description,
		Account:     accountName,
	}
	return nil
}

// ChangePassword - re-encrypt an identity under a new password
func (config *Configuration) ChangePassword(name string, oldPassword string, newPassword string) error {
	id, err := config.Identity(name)
	if nil != err {
		return err
	}
	privateKey, err := decryptIdentity(oldPassword, id)
	if nil != err {
		return err
	}

	salt, secretKey, err := hashPassword(newPassword)
	if nil != err {
		return err
	}
	encrypted, err := encryptData(privateKey.String(), secretKey)
	if nil != err {
		return err
	}
	id.Data = encrypted
	id.Salt = salt.String()
	config.Identities[name] = *id
	return nil
}

// Info - every identity without its private data, in name order
func (config *Configuration) Info() []InfoIdentity {
	info := make([]InfoIdentity, 0, len(config.Identities))
	for name, id := range config.Identities {
		info = append(info, InfoIdentity{
			Name:        name,
			Description: id.Description,
			Account:     id.Account,
			PublicKey:   id.PublicKey,
			CanSign:     "" != id.Data,
		})
	}
	sort.Slice(info, func(i, j int) bool {
		return info[i].Name < info[j].Name
	})
	return info
}
