package memory

import "binaa-admin/internal/domain/entity"

// seed loads the fixture dataset. Ids cross-reference each other the way the
// production records do (client -> request -> quotation -> contract ->
// project -> invoice -> payment -> settlement).
func (d *Directory) seed() {
	d.clients = []entity.ClientProfile{
		{ID: "cl-001", Name: "أحمد العتيبي", Phone: "+966500112233", Addresses: []string{"الرياض - حي النرجس", "الرياض - حي الياسمين"}, CreatedAt: "2024-01-12"},
		{ID: "cl-002", Name: "سارة القحطاني", Phone: "+966544789001", Addresses: []string{"جدة - حي الشاطئ"}, CreatedAt: "2024-02-03"},
		{ID: "cl-003", Name: "خالد الدوسري", Phone: "+966533456712", Addresses: []string{"الدمام - حي الفيصلية"}, CreatedAt: "2024-03-14"},
	}

	d.contractors = []entity.ContractorProfile{
		{
			ID: "co-001", Name: "شركة البناء الحديث", Phone: "+966112223344",
			CompanyName: "البناء الحديث للمقاولات", CRNumber: "1010456789",
			Rating: 4.6, TotalRatings: 128,
			Services: []string{"sub-001", "sub-003"},
			CoverageAreas: []entity.CoverageArea{
				{City: "الرياض", Districts: []string{"النرجس", "الياسمين", "الملقا"}},
			},
			VerificationStatus: entity.VerificationVerified, CreatedAt: "2023-11-20",
		},
		{
			ID: "co-002", Name: "مؤسسة الإتقان", Phone: "+966126655443",
			CompanyName: "الإتقان للمقاولات العامة", CRNumber: "4030998877",
			Rating: 3.9, TotalRatings: 41,
			Services: []string{"sub-002"},
			CoverageAreas: []entity.CoverageArea{
				{City: "جدة", Districts: []string{"الشاطئ", "الروضة"}},
			},
			VerificationStatus: entity.VerificationPending, CreatedAt: "2024-02-18",
		},
		{
			ID: "co-003", Name: "الصيانة السريعة", Phone: "+966138877665",
			CompanyName: "الصيانة السريعة المحدودة", CRNumber: "2050334455",
			Rating: 4.1, TotalRatings: 67,
			Services: []string{"sub-002", "sub-003"},
			CoverageAreas: []entity.CoverageArea{
				{City: "الدمام", Districts: []string{"الفيصلية", "الشاطئ الغربي"}},
			},
			VerificationStatus: entity.VerificationRejected, CreatedAt: "2024-01-05",
		},
	}

	d.users = []entity.User{
		{ID: "cl-001", Role: entity.RoleClient, Name: "أحمد العتيبي", Phone: "+966500112233", City: "الرياض", CreatedAt: "2024-01-12"},
		{ID: "cl-002", Role: entity.RoleClient, Name: "سارة القحطاني", Phone: "+966544789001", City: "جدة", CreatedAt: "2024-02-03"},
		{ID: "cl-003", Role: entity.RoleClient, Name: "خالد الدوسري", Phone: "+966533456712", City: "الدمام", CreatedAt: "2024-03-14"},
		{ID: "co-001", Role: entity.RoleContractor, Name: "شركة البناء الحديث", Phone: "+966112223344", City: "الرياض", CreatedAt: "2023-11-20"},
		{ID: "co-002", Role: entity.RoleContractor, Name: "مؤسسة الإتقان", Phone: "+966126655443", City: "جدة", CreatedAt: "2024-02-18"},
		{ID: "co-003", Role: entity.RoleContractor, Name: "الصيانة السريعة", Phone: "+966138877665", City: "الدمام", CreatedAt: "2024-01-05"},
	}

	d.requests = []entity.ServiceRequest{
		{ID: "req-001", ClientID: "cl-001", SubcategoryID: "sub-001", Title: "بناء ملحق خارجي", Description: "ملحق 60 متر مع دورة مياه", City: "الرياض", District: "النرجس", Urgency: "normal", Status: entity.RequestPending, CreatedAt: "2024-03-01T10:15:00", UpdatedAt: "2024-03-01T10:15:00"},
		{ID: "req-002", ClientID: "cl-002", SubcategoryID: "sub-001", Title: "ترميم فيلا", Description: "ترميم واجهة وتشطيبات داخلية", City: "جدة", District: "الشاطئ", Urgency: "urgent", Status: entity.RequestAccepted, CreatedAt: "2024-03-05", UpdatedAt: "2024-03-07"},
		{ID: "req-003", ClientID: "cl-001", SubcategoryID: "sub-003", Title: "تأسيس كهرباء ملحق", Description: "", City: "الرياض", District: "الياسمين", Urgency: "normal", Status: entity.RequestCompleted, CreatedAt: "2024-02-10", UpdatedAt: "2024-02-28"},
		{ID: "req-004", ClientID: "cl-003", SubcategoryID: "sub-002", Title: "تمديدات سباكة", Description: "تمديد شبكة مياه جديدة", City: "الدمام", District: "الفيصلية", Urgency: "normal", Status: entity.RequestCancelled, CreatedAt: "2024-03-20", UpdatedAt: "2024-03-21"},
		{ID: "req-005", ClientID: "cl-002", SubcategoryID: "sub-002", Title: "معالجة تسرب", Description: "تسرب مياه في السطح", City: "جدة", District: "الروضة", Urgency: "urgent", Status: entity.RequestInReview, CreatedAt: "2024-04-02T08:40:00", UpdatedAt: "2024-04-02T09:00:00"},
	}

	d.quickOrders = []entity.QuickServiceOrder{
		{ID: "qo-001", ClientID: "cl-001", QuickServiceID: "qs-001", City: "الرياض", District: "النرجس", Price: 350, ScheduledFor: "2024-03-10", Status: entity.QuickOrderSubmitted, CreatedAt: "2024-03-08"},
		{ID: "qo-002", ClientID: "cl-003", QuickServiceID: "qs-002", City: "الدمام", District: "الفيصلية", Price: 150, ScheduledFor: "2024-03-13", Status: entity.QuickOrderCompleted, CreatedAt: "2024-03-12T11:20:00"},
		{ID: "qo-003", ClientID: "cl-002", QuickServiceID: "qs-001", City: "جدة", District: "الشاطئ", Price: 350, Status: entity.QuickOrderCancelled, CreatedAt: "2024-04-01"},
	}

	d.quotations = []entity.Quotation{
		{
			ID: "quo-001", RequestID: "req-002", ContractorID: "co-001",
			Price: 45000, DurationDays: 60, Status: entity.QuotationAccepted,
			Installments: []entity.Installment{
				{Label: "دفعة التعاقد", Amount: 15000, DueOffsetDays: 0},
				{Label: "دفعة منتصف العمل", Amount: 15000, DueOffsetDays: 30},
				{Label: "دفعة التسليم", Amount: 15000, DueOffsetDays: 60},
			},
			ExecutionPhases: []entity.ExecutionPhase{
				{Name: "الهدم والتجهيز", Amount: 10000, Order: 1},
				{Name: "الترميم الإنشائي", Amount: 20000, Order: 2},
				{Name: "التشطيبات", Amount: 15000, Order: 3},
			},
			CreatedAt: "2024-03-06",
		},
		{ID: "quo-002", RequestID: "req-002", ContractorID: "co-002", Price: 38000, DurationDays: 75, Status: entity.QuotationRejected, CreatedAt: "2024-03-06"},
		{ID: "quo-003", RequestID: "req-001", ContractorID: "co-001", Price: 52000, DurationDays: 90, Status: entity.QuotationPending, CreatedAt: "2024-03-02T16:45:00"},
		{ID: "quo-004", RequestID: "req-001", ContractorID: "co-003", Price: 48000, DurationDays: 80, Status: entity.QuotationWithdrawn, CreatedAt: "2024-03-03"},
		{
			// installments deliberately do not sum to the price; the detail
			// endpoint surfaces this as an advisory warning
			ID: "quo-005", RequestID: "req-005", ContractorID: "co-002",
			Price: 30000, DurationDays: 20, Status: entity.QuotationPending,
			Installments: []entity.Installment{
				{Label: "دفعة أولى", Amount: 10000, DueOffsetDays: 0},
				{Label: "دفعة التسليم", Amount: 10000, DueOffsetDays: 20},
			},
			CreatedAt: "2024-04-03",
		},
	}

	d.contracts = []entity.Contract{
		{
			ID: "con-001", QuotationID: "quo-001", RequestID: "req-002",
			ClientID: "cl-002", ContractorID: "co-001", TotalPrice: 45000,
			Milestones: []entity.Milestone{
				{ID: "ms-001", ContractID: "con-001", Title: "دفعة التعاقد", Amount: 15000, Status: entity.MilestonePaid, DueDate: "2024-03-15", PaidAt: "2024-03-15T14:30:00"},
				{ID: "ms-002", ContractID: "con-001", Title: "دفعة منتصف العمل", Amount: 15000, Status: entity.MilestoneDue, DueDate: "2024-04-15"},
				{ID: "ms-003", ContractID: "con-001", Title: "دفعة التسليم", Amount: 15000, Status: entity.MilestoneNotDue, DueDate: "2024-05-15"},
			},
			SignedAt: "2024-03-07", CreatedAt: "2024-03-07",
		},
		{
			ID: "con-002", QuotationID: "quo-002", RequestID: "req-003",
			ClientID: "cl-001", ContractorID: "co-003", TotalPrice: 20000,
			Milestones: []entity.Milestone{
				{ID: "ms-004", ContractID: "con-002", Title: "بداية التنفيذ", Amount: 8000, Status: entity.MilestonePaid, DueDate: "2024-02-15", PaidAt: "2024-02-16"},
				{ID: "ms-005", ContractID: "con-002", Title: "التسليم النهائي", Amount: 8000, Status: entity.MilestonePaid, DueDate: "2024-02-25", PaidAt: "2024-02-25"},
			},
			SignedAt: "2024-02-12", CreatedAt: "2024-02-12",
		},
	}

	// milestones are also listed standalone; the dataset keeps a flat copy
	// rather than joining through contracts
	d.milestones = []entity.Milestone{
		{ID: "ms-001", ContractID: "con-001", Title: "دفعة التعاقد", Amount: 15000, Status: entity.MilestonePaid, DueDate: "2024-03-15", PaidAt: "2024-03-15T14:30:00"},
		{ID: "ms-002", ContractID: "con-001", Title: "دفعة منتصف العمل", Amount: 15000, Status: entity.MilestoneDue, DueDate: "2024-04-15"},
		{ID: "ms-003", ContractID: "con-001", Title: "دفعة التسليم", Amount: 15000, Status: entity.MilestoneNotDue, DueDate: "2024-05-15"},
		{ID: "ms-004", ContractID: "con-002", Title: "بداية التنفيذ", Amount: 8000, Status: entity.MilestonePaid, DueDate: "2024-02-15", PaidAt: "2024-02-16"},
		{ID: "ms-005", ContractID: "con-002", Title: "التسليم النهائي", Amount: 8000, Status: entity.MilestonePaid, DueDate: "2024-02-25", PaidAt: "2024-02-25"},
	}

	d.projects = []entity.Project{
		{ID: "prj-001", RequestID: "req-002", ContractID: "con-001", Name: "ترميم فيلا الشاطئ", Progress: 40, Status: entity.ProjectActive, CreatedAt: "2024-03-08"},
		{ID: "prj-002", RequestID: "req-003", ContractID: "con-002", Name: "تأسيس كهرباء الملحق", Progress: 100, Status: entity.ProjectCompleted, CreatedAt: "2024-02-13"},
	}

	d.invoices = []entity.Invoice{
		{ID: "inv-001", ProjectID: "prj-001", MilestoneID: "ms-001", Amount: 15000, VATAmount: 2250, TotalAmount: 17250, Status: entity.InvoicePaid, ZatcaStatus: entity.ZatcaCleared, ZohoSyncID: "ZB-88213", CreatedAt: "2024-03-15"},
		{ID: "inv-002", ProjectID: "prj-001", MilestoneID: "ms-002", Amount: 15000, VATAmount: 2250, TotalAmount: 17250, Status: entity.InvoiceSent, ZatcaStatus: entity.ZatcaPending, CreatedAt: "2024-04-16"},
		{ID: "inv-003", ProjectID: "prj-002", MilestoneID: "ms-004", Amount: 8000, VATAmount: 1200, TotalAmount: 9200, Status: entity.InvoicePaid, ZatcaStatus: entity.ZatcaReported, ZohoSyncID: "ZB-87110", CreatedAt: "2024-02-16"},
		// VAT figure is off on purpose; surfaced as an advisory warning only
		{ID: "inv-004", ProjectID: "prj-002", MilestoneID: "ms-005", Amount: 8000, VATAmount: 1000, TotalAmount: 9000, Status: entity.InvoiceRejected, ZatcaStatus: entity.ZatcaRejected, CreatedAt: "2024-02-26"},
		{ID: "inv-005", ProjectID: "prj-001", Amount: 2000, VATAmount: 300, TotalAmount: 2300, Status: entity.InvoiceDraft, ZatcaStatus: entity.ZatcaPending, CreatedAt: "2024-04-20"},
	}

	d.payments = []entity.Payment{
		{ID: "pay-001", InvoiceID: "inv-001", Amount: 17250, Method: "mada", Status: entity.PaymentSuccess, CreatedAt: "2024-03-15T14:30:00"},
		{ID: "pay-002", InvoiceID: "inv-003", Amount: 9200, Method: "bank_transfer", Status: entity.PaymentSuccess, CreatedAt: "2024-02-16T10:05:00"},
		{ID: "pay-003", InvoiceID: "inv-002", Amount: 17250, Method: "mada", Status: entity.PaymentPending, CreatedAt: "2024-04-16"},
		{
			ID: "pay-004", InvoiceID: "inv-004", Amount: 9000, Method: "visa", Status: entity.PaymentRefunded,
			Refund:    &entity.Refund{Reason: "فاتورة مرفوضة", Amount: 9000, TxnID: "rf-20240318-004", RefundedAt: "2024-03-18T09:12:00"},
			CreatedAt: "2024-03-16",
		},
		{ID: "pay-005", InvoiceID: "inv-002", Amount: 17250, Method: "visa", Status: entity.PaymentFailed, CreatedAt: "2024-03-10T22:47:00"},
	}

	d.settlements = []entity.Settlement{
		{ID: "set-001", ContractorID: "co-001", PeriodStart: "2024-03-01", PeriodEnd: "2024-03-31", GrossAmount: 17250, Fees: 862.5, VATAmount: 129.38, NetAmount: 16258.12, Status: entity.SettlementPaid, CreatedAt: "2024-04-03"},
		{ID: "set-002", ContractorID: "co-003", PeriodStart: "2024-02-01", PeriodEnd: "2024-02-29", GrossAmount: 9200, Fees: 460, VATAmount: 69, NetAmount: 8671, Status: entity.SettlementPending, CreatedAt: "2024-03-02"},
	}

	d.complaints = []entity.Complaint{
		{ID: "cmp-001", UserID: "cl-002", ProjectID: "prj-001", Subject: "تأخر في التنفيذ", Description: "المقاول متأخر عن الجدول أسبوعين", Status: entity.ComplaintOpen, CreatedAt: "2024-03-18"},
		{ID: "cmp-002", UserID: "cl-001", Subject: "جودة التشطيب", Description: "تشققات في الدهان بعد التسليم", Status: entity.ComplaintResponded, Response: "تم التواصل مع المقاول وجدولة زيارة إصلاح", RespondedAt: "2024-03-04T13:00:00", CreatedAt: "2024-03-02"},
		{ID: "cmp-003", UserID: "co-002", Subject: "تقييم غير عادل", Description: "العميل قيّم الخدمة قبل اكتمال العمل", Status: entity.ComplaintEscalated, CreatedAt: "2024-04-05T17:30:00"},
	}

	d.tickets = []entity.SupportTicket{
		{ID: "tic-001", UserID: "cl-003", Subject: "مشكلة في الدفع", Priority: "urgent", Status: entity.TicketOpen, CreatedAt: "2024-03-19T09:00:00"},
		{ID: "tic-002", UserID: "co-001", Subject: "تحديث السجل التجاري", Priority: "normal", Status: entity.TicketResolved, Reply: "تم تحديث السجل", CreatedAt: "2024-02-28"},
		{ID: "tic-003", UserID: "cl-001", Subject: "استفسار عن العمولة", Priority: "normal", Status: entity.TicketInProgress, CreatedAt: "2024-04-03T15:10:00"},
	}

	d.notifications = []entity.Notification{
		{ID: "not-001", Audience: "CLIENT", Title: "عرض جديد", Body: "وصلك عرض سعر جديد على طلبك", CreatedAt: "2024-03-02T17:00:00"},
		{ID: "not-002", Audience: "CONTRACTOR", Title: "دفعة مستحقة", Body: "دفعة المرحلة الثانية أصبحت مستحقة", ReadAt: "2024-04-16T08:00:00", CreatedAt: "2024-04-15T07:30:00"},
		// created_at intentionally malformed; range filters must skip it
		{ID: "not-003", Audience: "ALL", Title: "صيانة مجدولة", Body: "سيتم إيقاف المنصة مؤقتاً للصيانة", CreatedAt: "pending-send"},
	}

	d.threads = []entity.ChatThread{
		{ID: "cht-001", RequestID: "req-002", ClientID: "cl-002", ContractorID: "co-001", CreatedAt: "2024-03-06", UpdatedAt: "2024-03-16T20:05:00"},
		{ID: "cht-002", RequestID: "req-001", ClientID: "cl-001", ContractorID: "co-003", CreatedAt: "2024-03-02"},
	}

	d.messages = []entity.ChatMessage{
		{ID: "msg-001", ThreadID: "cht-001", SenderID: "cl-002", Body: "متى تقدرون تبدأون؟", SentAt: "2024-03-06T18:00:00"},
		{ID: "msg-002", ThreadID: "cht-001", SenderID: "co-001", Body: "نقدر نبدأ الأسبوع الجاي بإذن الله", SentAt: "2024-03-06T18:12:00"},
		{ID: "msg-003", ThreadID: "cht-001", SenderID: "cl-002", Body: "ممتاز، بانتظاركم", SentAt: "2024-03-16T20:05:00"},
		{ID: "msg-004", ThreadID: "cht-002", SenderID: "cl-001", Body: "هل تغطون حي النرجس؟", SentAt: "2024-03-02T11:30:00"},
	}

	d.groups = []entity.ServiceGroup{
		{ID: "grp-001", Name: "أعمال البناء", Icon: "building"},
		{ID: "grp-002", Name: "الصيانة المنزلية", Icon: "wrench"},
	}

	d.categories = []entity.Category{
		{ID: "cat-001", GroupID: "grp-001", Name: "الهيكل والعظم"},
		{ID: "cat-002", GroupID: "grp-002", Name: "السباكة"},
		{ID: "cat-003", GroupID: "grp-002", Name: "الكهرباء"},
	}

	d.subcategories = []entity.Subcategory{
		{ID: "sub-001", CategoryID: "cat-001", Name: "بناء ملاحق"},
		{ID: "sub-002", CategoryID: "cat-002", Name: "تسليك وتمديدات"},
		{ID: "sub-003", CategoryID: "cat-003", Name: "تأسيس كهرباء"},
	}

	d.quickServices = []entity.QuickService{
		{ID: "qs-001", SubcategoryID: "sub-002", Name: "كشف تسرب المياه", Price: 350, DurationHours: 2},
		{ID: "qs-002", SubcategoryID: "sub-003", Name: "تركيب ثريا", Price: 150, DurationHours: 1},
	}
}
