package sqlinline

const QInsertContribution = `--sql d59e166f-67f5-41e7-87d7-83c4ef079c65
insert into contributions(id, issue_id, user_email, amount, created_at)
values (gen_random_uuid(), $1::uuid, $2::text, $3::float8, now())
returning id;
`

const QListContributionsByIssue = `--sql e393117f-143b-4547-8901-a7c6811fe03f
select id, issue_id, user_email, amount, created_at
from contributions
where issue_id = $1::uuid
order by created_at;
`

const QListContributionsByUser = `--sql 79b352af-7db7-4595-b35c-8f72b3994515
select id, issue_id, user_email, amount, created_at
from contributions
where user_email = $1::text
order by created_at;
`
