package repository

// Models lists every table for AutoMigrate, parents before children.
func Models() []any {
	return []any{
		&userModel{},
		&clientModel{},
		&quoteModel{},
		&quoteItemModel{},
		&invoiceModel{},
		&invoiceItemModel{},
		&invoicePaymentModel{},
		&expenseModel{},
		&accountModel{},
		&journalEntryModel{},
		&journalLineModel{},
		&fileModel{},
		&systemConfigModel{},
		&whiteLabelModel{},
		&auditLogModel{},
		&clientInvitationModel{},
		&clientPortalUserModel{},
		&projectModel{},
		&taskModel{},
		&appointmentModel{},
	}
}
