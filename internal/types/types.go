// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

type Agency struct {
	ID           string    `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	CompanyEmail string    `db:"company_email" json:"companyEmail"`
	CompanyPhone string    `db:"company_phone" json:"companyPhone"`
	Address      string    `db:"address" json:"address"`
	City         string    `db:"city" json:"city"`
	ZipCode      string    `db:"zip_code" json:"zipCode"`
	State        string    `db:"state" json:"state"`
	Country      string    `db:"country" json:"country"`
	AgencyLogo   string    `db:"agency_logo" json:"agencyLogo"`
	WhiteLabel   bool      `db:"white_label" json:"whiteLabel"`
	Goal         int       `db:"goal" json:"goal"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

type SubAccount struct {
	ID             string    `db:"id" json:"id"`
	AgencyID       string    `db:"agency_id" json:"agencyId"`
	Name           string    `db:"name" json:"name"`
	CompanyEmail   string    `db:"company_email" json:"companyEmail"`
	CompanyPhone   string    `db:"company_phone" json:"companyPhone"`
	Address        string    `db:"address" json:"address"`
	City           string    `db:"city" json:"city"`
	ZipCode        string    `db:"zip_code" json:"zipCode"`
	State          string    `db:"state" json:"state"`
	Country        string    `db:"country" json:"country"`
	SubAccountLogo string    `db:"sub_account_logo" json:"subAccountLogo"`
	Goal           int       `db:"goal" json:"goal"`
	CreatedAt      time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time `db:"updated_at" json:"updatedAt"`
}

// User is the store-side record of an identity. AgencyID is empty until the
// user has been onboarded into an agency.
type User struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	AvatarURL string    `db:"avatar_url" json:"avatarUrl"`
	Role      Role      `db:"role" json:"role"`
	AgencyID  string    `db:"agency_id" json:"agencyId,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// Permission grants an email access to one subaccount. Rows are never
// updated, the newest row for an (email, subaccount) pair is the effective one.
type Permission struct {
	ID           string    `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	SubAccountID string    `db:"sub_account_id" json:"subAccountId"`
	Access       bool      `db:"access" json:"access"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

type Invitation struct {
	ID        string           `db:"id" json:"id"`
	Email     string           `db:"email" json:"email"`
	AgencyID  string           `db:"agency_id" json:"agencyId"`
	Role      Role             `db:"role" json:"role"`
	Status    InvitationStatus `db:"status" json:"status"`
	CreatedAt time.Time        `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time        `db:"updated_at" json:"updatedAt"`
}

type Notification struct {
	ID           string    `db:"id" json:"id"`
	Message      string    `db:"notification" json:"notification"`
	AgencyID     string    `db:"agency_id" json:"agencyId"`
	SubAccountID string    `db:"sub_account_id" json:"subAccountId,omitempty"`
	UserID       string    `db:"user_id" json:"userId"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`

	// ActorName is filled in by listings joined on users.
	ActorName string `db:"-" json:"actorName,omitempty"`
}

// SidebarOption belongs either to an agency or to a subaccount, never both.
type SidebarOption struct {
	ID           string      `db:"id" json:"id"`
	Name         string      `db:"name" json:"name"`
	Icon         SidebarIcon `db:"icon" json:"icon"`
	Link         string      `db:"link" json:"link"`
	AgencyID     string      `db:"agency_id" json:"agencyId,omitempty"`
	SubAccountID string      `db:"sub_account_id" json:"subAccountId,omitempty"`
	CreatedAt    time.Time   `db:"created_at" json:"createdAt"`
}

// RoleSyncTask marks a store role that has not been confirmed by the
// identity provider yet.
type RoleSyncTask struct {
	UserID    string    `db:"user_id" json:"userId"`
	Role      Role      `db:"role" json:"role"`
	Attempts  int       `db:"attempts" json:"attempts"`
	LastError string    `db:"last_error" json:"lastError,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}
