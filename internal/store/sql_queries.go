package store

// Parent-row inserts. Every form insert returns the generated identifier so
// the writer can tag child rows with it inside the same transaction.
const (
	createReferral = `INSERT INTO referrals (referral_date, name, birth_date, gender, race, referred_by_name, phone, address, insurance, notes)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    RETURNING id;`

	createEncounter = `INSERT INTO encounters (client_name, staff_name, encounter_date, location, summary)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id;`

	createSnapAssessment = `INSERT INTO snap_assessments (client_name, assessment_date, assessor_name, strengths, needs, abilities, preferences)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING id;`

	createDischargeSummary = `INSERT INTO discharge_summaries (client_name, admission_date, discharge_date, discharge_reason, progress_summary, aftercare_plan)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING id;`

	createWrapPlan = `INSERT INTO wrap_plans (client_name, plan_date, daily_plan, crisis_plan)
    VALUES ($1, $2, $3, $4)
    RETURNING id;`

	createHandbookAcknowledgement = `INSERT INTO handbook_acknowledgements (client_name, acknowledgement_date, client_signature, staff_signature)
    VALUES ($1, $2, $3, $4)
    RETURNING id;`
)

// Child-row inserts. The first placeholder is always the parent identifier.
const (
	createReferralService = `INSERT INTO referral_services (referral_id, service)
    VALUES ($1, $2);`

	createEncounterServiceLog = `INSERT INTO encounter_service_logs (encounter_id, entry_date, start_time, end_time, units, staff_signature, client_signature)
    VALUES ($1, $2, $3, $4, $5, $6, $7);`

	createSnapSupportArea = `INSERT INTO snap_support_areas (assessment_id, area)
    VALUES ($1, $2);`

	createDischargeReferral = `INSERT INTO discharge_referrals (summary_id, referral)
    VALUES ($1, $2);`

	createWrapWellnessTool = `INSERT INTO wrap_wellness_tools (plan_id, tool)
    VALUES ($1, $2);`

	createWrapSupporter = `INSERT INTO wrap_supporters (plan_id, name, phone, role)
    VALUES ($1, $2, $3, $4);`

	createHandbookSection = `INSERT INTO handbook_sections (acknowledgement_id, section)
    VALUES ($1, $2);`
)

// Single-submission reads. Child selects are ordered by id, which preserves
// the order child rows were inserted in - and therefore payload order.
const (
	getReferral = `SELECT id, referral_date, name, birth_date, gender, race, referred_by_name, phone, address, insurance, notes, created_at
    FROM referrals
    WHERE id = $1;`

	getReferralServices = `SELECT service
    FROM referral_services
    WHERE referral_id = $1
    ORDER BY id;`

	getEncounter = `SELECT id, client_name, staff_name, encounter_date, location, summary, created_at
    FROM encounters
    WHERE id = $1;`

	getEncounterServiceLogs = `SELECT entry_date, start_time, end_time, units, staff_signature, client_signature
    FROM encounter_service_logs
    WHERE encounter_id = $1
    ORDER BY id;`

	getSnapAssessment = `SELECT id, client_name, assessment_date, assessor_name, strengths, needs, abilities, preferences, created_at
    FROM snap_assessments
    WHERE id = $1;`

	getSnapSupportAreas = `SELECT area
    FROM snap_support_areas
    WHERE assessment_id = $1
    ORDER BY id;`

	getDischargeSummary = `SELECT id, client_name, admission_date, discharge_date, discharge_reason, progress_summary, aftercare_plan, created_at
    FROM discharge_summaries
    WHERE id = $1;`

	getDischargeReferrals = `SELECT referral
    FROM discharge_referrals
    WHERE summary_id = $1
    ORDER BY id;`

	getWrapPlan = `SELECT id, client_name, plan_date, daily_plan, crisis_plan, created_at
    FROM wrap_plans
    WHERE id = $1;`

	getWrapWellnessTools = `SELECT tool
    FROM wrap_wellness_tools
    WHERE plan_id = $1
    ORDER BY id;`

	getWrapSupporters = `SELECT name, phone, role
    FROM wrap_supporters
    WHERE plan_id = $1
    ORDER BY id;`

	getHandbookAcknowledgement = `SELECT id, client_name, acknowledgement_date, client_signature, staff_signature, created_at
    FROM handbook_acknowledgements
    WHERE id = $1;`

	getHandbookSections = `SELECT section
    FROM handbook_sections
    WHERE acknowledgement_id = $1
    ORDER BY id;`
)

// Auth queries.
const (
	createUser = `INSERT INTO users (username, password_hash, full_name, role, is_active)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id, created_at;`

	createUserPermissions = `INSERT INTO user_permissions (user_id, can_manage_users, can_view_submissions, can_export_data)
    VALUES ($1, $2, $3, $4);`

	findUserByUsername = `SELECT id, username, password_hash, full_name, role, is_active, created_at
    FROM users
    WHERE username = $1;`

	findUserByID = `SELECT id, username, password_hash, full_name, role, is_active, created_at
    FROM users
    WHERE id = $1;`

	getUserPermissions = `SELECT can_manage_users, can_view_submissions, can_export_data
    FROM user_permissions
    WHERE user_id = $1;`

	upsertUserPermissions = `INSERT INTO user_permissions (user_id, can_manage_users, can_view_submissions, can_export_data)
    VALUES ($1, $2, $3, $4)
    ON CONFLICT (user_id) DO UPDATE
    SET can_manage_users = EXCLUDED.can_manage_users,
        can_view_submissions = EXCLUDED.can_view_submissions,
        can_export_data = EXCLUDED.can_export_data;`
)
