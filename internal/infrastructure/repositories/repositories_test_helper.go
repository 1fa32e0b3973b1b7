package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL,
		status TEXT NOT NULL,
		full_name TEXT,
		phone_number TEXT,
		residential_address TEXT,
		date_of_birth TEXT,
		country TEXT,
		state TEXT,
		avatar_url TEXT,
		is_verified BOOLEAN NOT NULL DEFAULT 0,
		verification_submitted BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createItemTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE items (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		name TEXT NOT NULL,
		description TEXT NOT NULL,
		category TEXT NOT NULL,
		condition TEXT NOT NULL,
		buying_price REAL,
		estimated_cost REAL NOT NULL,
		swap_for TEXT NOT NULL,
		location TEXT,
		item_location TEXT NOT NULL,
		item_state TEXT NOT NULL,
		item_country TEXT NOT NULL,
		images TEXT NOT NULL DEFAULT '[]',
		receipt_image TEXT,
		status TEXT NOT NULL,
		approved_at DATETIME,
		approved_by TEXT,
		rejection_reason TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createPaymentTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE payments (
		id TEXT PRIMARY KEY,
		tx_ref TEXT NOT NULL UNIQUE,
		user_id TEXT NOT NULL,
		item_id TEXT,
		amount REAL NOT NULL,
		currency TEXT NOT NULL,
		status TEXT NOT NULL,
		gateway_tx_id TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createNotificationTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE notifications (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		type TEXT NOT NULL,
		title TEXT NOT NULL,
		content TEXT NOT NULL,
		is_read BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME
	);`)
}

func createVerificationTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE verifications (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		id_front_image TEXT NOT NULL,
		id_back_image TEXT NOT NULL,
		selfie_image TEXT NOT NULL,
		status TEXT NOT NULL,
		reviewed_by TEXT,
		reviewed_at DATETIME,
		rejection_reason TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createFavoriteTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE favorites (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		item_id TEXT NOT NULL,
		created_at DATETIME,
		UNIQUE(user_id, item_id)
	);`)
}

func createChatTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE chats (
		id TEXT PRIMARY KEY,
		sender_id TEXT NOT NULL,
		receiver_id TEXT NOT NULL,
		item_id TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE messages (
		id TEXT PRIMARY KEY,
		chat_id TEXT NOT NULL,
		sender_id TEXT NOT NULL,
		content TEXT NOT NULL,
		is_read BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME
	);`)
}
